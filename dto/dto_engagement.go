package dto

type CreateCommentReq struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// LikeResponse reports the state after the toggle: Liked is true when
// the caller is now a member of the liker set.
type LikeResponse struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}
