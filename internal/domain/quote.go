package domain

// Quote is a free-form reference document; its fields are not fixed.
type Quote map[string]interface{}
