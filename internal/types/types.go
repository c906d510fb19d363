package types

// Account is the wire representation of a stored account. The password hash
// is deliberately never serialized.
type Account struct {
	AccountId    int    `json:"accountId"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type Message struct {
	MessageId       int    `json:"messageId"`
	PostedBy        int    `json:"postedBy"`
	MessageText     string `json:"messageText"`
	TimePostedEpoch int64  `json:"timePostedEpoch"`
}
