package domain

type CategoryRepository interface {
	GetAll() ([]Category, error)
	// GetByID returns nil when no category carries the id.
	GetByID(id int) (*Category, error)
	// GetByName matches case-insensitively and returns nil when absent.
	GetByName(name string) (*Category, error)
	Add(category Category) error
	Remove(name string) error
	NextID() int
}
