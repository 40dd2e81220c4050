package services

import (
	"fmt"
	"sync"

	"github.com/Zephrnos/painting-pack-maker/pkg/models"
)

var (
	ErrItemNotFound = fmt.Errorf("no catalog item at that position")
)

/*
ItemUpdate carries the user-editable metadata fields of a catalog entry.
Fields are applied verbatim, empty values included; only the pack-level
metadata setters have the ignore-blank policy.
*/
type ItemUpdate struct {
	ID       string
	Filename string
	Name     string
	Artist   string
}

type CatalogServicer interface {
	Add(sourcePath string, class models.AspectClass) int
	Update(index int, update ItemUpdate) error
	ToggleIncluded(index int) (bool, error)
	Remove(index int) error
	List() []models.ExportItem
	Included() []models.ExportItem
}

/*
CatalogService holds the pending export entries in memory, in the order
the user added them. The mutex covers the HTTP shell's concurrent edits;
export calls themselves must still be serialized per target directory by
the caller.
*/
type CatalogService struct {
	mutex *sync.Mutex
	items *[]models.ExportItem
}

func NewCatalogService() CatalogService {
	return CatalogService{
		mutex: &sync.Mutex{},
		items: &[]models.ExportItem{},
	}
}

/*
Add registers a photo under an aspect class and returns its position in
the catalog.
*/
func (s CatalogService) Add(sourcePath string, class models.AspectClass) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	*s.items = append(*s.items, models.NewExportItem(sourcePath, class))
	return len(*s.items) - 1
}

func (s CatalogService) Update(index int, update ItemUpdate) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if index < 0 || index >= len(*s.items) {
		return fmt.Errorf("%w: %d", ErrItemNotFound, index)
	}

	item := &(*s.items)[index]
	item.ID = update.ID
	item.Filename = update.Filename
	item.Name = update.Name
	item.Artist = update.Artist

	return nil
}

/*
ToggleIncluded flips an entry's inclusion flag and returns the new value.
*/
func (s CatalogService) ToggleIncluded(index int) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if index < 0 || index >= len(*s.items) {
		return false, fmt.Errorf("%w: %d", ErrItemNotFound, index)
	}

	item := &(*s.items)[index]
	item.Included = !item.Included

	return item.Included, nil
}

func (s CatalogService) Remove(index int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if index < 0 || index >= len(*s.items) {
		return fmt.Errorf("%w: %d", ErrItemNotFound, index)
	}

	*s.items = append((*s.items)[:index], (*s.items)[index+1:]...)
	return nil
}

/*
List returns a copy of every entry in catalog order.
*/
func (s CatalogService) List() []models.ExportItem {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	result := make([]models.ExportItem, len(*s.items))
	copy(result, *s.items)

	return result
}

/*
Included returns a copy of the entries marked for export, in catalog
order. This is the snapshot the exporter borrows.
*/
func (s CatalogService) Included() []models.ExportItem {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	result := []models.ExportItem{}

	for _, item := range *s.items {
		if item.Included {
			result = append(result, item)
		}
	}

	return result
}
