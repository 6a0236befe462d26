package interfaces

import "context"

// INotifier delivers a plaintext message to the registry owner.
type INotifier interface {
	Send(ctx context.Context, subject, body string) error
}
