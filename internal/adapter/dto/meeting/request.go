package meeting

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=1,max=1000"`
}

// DefaultListMeetingsRequest returns the paging used when the client sends none
func DefaultListMeetingsRequest() ListMeetingsRequest {
	return ListMeetingsRequest{Skip: 0, Limit: 10}
}
