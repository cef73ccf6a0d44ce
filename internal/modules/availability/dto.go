package availability

// SetRequest uses a pointer so an omitted is_available is distinguishable from false.
type SetRequest struct {
	Date        string `json:"date" validate:"required,isodate"`
	IsAvailable *bool  `json:"is_available" validate:"required"`
}

type Entry struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"is_available"`
}
