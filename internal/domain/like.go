package domain

// UserLike records that a user liked a video. One document per (userName, url).
type UserLike struct {
	UserName string `bson:"userName" json:"userName"`
	URL      string `bson:"url" json:"url"`
}
