package review

// Review is one record of the persisted collection. Date is assigned by
// the server on create and left empty on seed records.
type Review struct {
	Name   string `json:"name"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Date   string `json:"date,omitempty"`
}

// CreateReviewRequest carries a candidate review. Rating is a pointer so
// an absent field (defaults to 5) is distinguishable from an explicit 0.
// Any client-supplied date is ignored.
type CreateReviewRequest struct {
	Name   string `json:"name" validate:"required"`
	Text   string `json:"text" validate:"required"`
	Rating *int   `json:"rating,omitempty"`
}

type DeleteReviewsRequest struct {
	Name string `json:"name" validate:"required"`
}
