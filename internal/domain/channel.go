package domain

// ChannelProfile is the read model for a user viewed as a channel.
// IsSubscribed reflects the viewer passed to the aggregation; it is always
// false for anonymous viewers.
type ChannelProfile struct {
	FullName                 string `json:"fullName"`
	UserName                 string `json:"userName"`
	Email                    string `json:"email"`
	SubscribersCount         int    `json:"subscribersCount"`
	ChannelSubscribedToCount int    `json:"channelSubscribedToCount"`
	IsSubscribed             bool   `json:"isSubscribed"`
	Avatar                   string `json:"avatar"`
	CoverImage               string `json:"coverImage"`
}
