package controller

// IDParam binds and validates the numeric :id path segment shared by the
// resource endpoints.
type IDParam struct {
	ID int `uri:"id" binding:"required,min=1"`
}
