package repositories

var (
	ErrOrderNotFound    = &RepositoryError{"order not found"}
	ErrOrderIDTaken     = &RepositoryError{"order id already taken"}
	ErrProductNotFound  = &RepositoryError{"product not found"}
	ErrCategoryNotFound = &RepositoryError{"category not found"}
	ErrUserNotFound     = &RepositoryError{"user not found"}
	ErrAdminNotFound    = &RepositoryError{"admin not found"}
	ErrEmailTaken       = &RepositoryError{"email already registered"}
)

type RepositoryError struct {
	message string
}

func (e *RepositoryError) Error() string {
	return e.message
}
