package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// TransportPort hands a finished order message to the host chat
// platform. The local fallback variant is a normal operating mode for
// development and preview, not an error.
type TransportPort interface {
	Send(ctx context.Context, message string) error
	Name() string
}
