package model

// AccountMetrics are the public counters of the authenticated account.
type AccountMetrics struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
	Tweets    int64 `json:"tweets"`
}

// Tweet is the minimal view of a created tweet.
type Tweet struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
