package sdk

import "context"

// LinkConfig describes one runtime link between a component and this
// provider.
type LinkConfig interface {
	// SourceID is the identity of the link source.
	SourceID() string

	// TargetID is the identity of the link target.
	TargetID() string

	// LinkName distinguishes multiple links between the same pair.
	LinkName() string

	// Config carries the link's named configuration values.
	Config() map[string]string
}

// ProviderHandler is the host lifecycle contract every provider exposes.
// Embed ProviderBase to accept the default no-op behavior and override
// only the notifications the provider cares about.
type ProviderHandler interface {
	ReceiveLinkConfigAsSource(ctx context.Context, link LinkConfig) error
	ReceiveLinkConfigAsTarget(ctx context.Context, link LinkConfig) error
	DeleteLink(ctx context.Context, componentID string) error
	Shutdown(ctx context.Context) error
}

// ProviderBase implements ProviderHandler with success no-ops.
type ProviderBase struct{}

func (ProviderBase) ReceiveLinkConfigAsSource(ctx context.Context, link LinkConfig) error {
	return nil
}

func (ProviderBase) ReceiveLinkConfigAsTarget(ctx context.Context, link LinkConfig) error {
	return nil
}

func (ProviderBase) DeleteLink(ctx context.Context, componentID string) error {
	return nil
}

func (ProviderBase) Shutdown(ctx context.Context) error {
	return nil
}

var _ ProviderHandler = ProviderBase{}
