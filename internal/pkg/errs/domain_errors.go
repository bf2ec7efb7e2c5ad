package errs

// Error kinds shared by the usecase and handler layers.
// Usecases attach them with Mark so the original cause keeps its stack.
var (
	// Validation errors
	ErrValidation = New("validation failed")

	// Catalog errors
	ErrHotelNotFound = New("hotel not found")
	ErrRoomNotFound  = New("room not found")

	// Reservation errors
	ErrReservationNotFound = New("reservation not found")
	ErrNoAvailability      = New("no rooms available for the selected dates")

	// Access errors
	ErrUnauthorized = New("access denied")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
