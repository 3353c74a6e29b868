package contracts

type NotificationUnreadResponse struct {
	Unread int64 `json:"unread"`
}
