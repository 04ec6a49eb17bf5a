package consts

const (
	ChannelFollowerKey      = "channel:follower:"
	ChannelFollowerCountKey = "channel:follower:count:"
)
