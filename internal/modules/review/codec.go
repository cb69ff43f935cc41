package review

import "encoding/json"

// The collection is stored as one JSON array under a single key.
// encoding/json is UTF-8 safe end to end, so multi-byte review text
// survives the round trip byte for byte.

func encodeReviews(reviews []Review) ([]byte, error) {
	return json.Marshal(reviews)
}

// decodeReviews reports ok=false for undecodable bytes. Callers treat a
// bad blob as absent (reseed on list, start empty on append) instead of
// failing the request.
func decodeReviews(value []byte) ([]Review, bool) {
	var reviews []Review
	if err := json.Unmarshal(value, &reviews); err != nil {
		return nil, false
	}
	return reviews, true
}
