package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/diaita/framework/container"
)

// ── stub providers ────────────────────────────────────────────────────────────

type greeting struct{ text string }

type eagerProvider struct {
	container.BaseProvider
	registerCalls int
	bootCalls     int
}

func (p *eagerProvider) Register(c *container.Container) error {
	p.registerCalls++
	container.Bind(c, &greeting{text: "eager"})
	return nil
}

func (p *eagerProvider) Boot(_ *container.Container) error {
	p.bootCalls++
	return nil
}

// consumerProvider resolves in Boot what another provider registered.
type consumerProvider struct {
	container.BaseProvider
	seen *greeting
}

func (p *consumerProvider) Register(c *container.Container) error {
	if err := c.Provide(newLeafDependency); err != nil {
		return err
	}
	return c.Provide(newNeedsDependency)
}

func (p *consumerProvider) Boot(c *container.Container) error {
	g, err := container.Resolve[*greeting](c)
	p.seen = g
	return err
}

type failingProvider struct {
	container.BaseProvider
	registerErr error
	bootErr     error
}

func (p *failingProvider) Register(_ *container.Container) error { return p.registerErr }
func (p *failingProvider) Boot(_ *container.Container) error     { return p.bootErr }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestRegistry_RegisterCalledImmediately(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))

	assert.Equal(t, 1, p.registerCalls)
	assert.Equal(t, 0, p.bootCalls, "Boot must wait for registry.Boot()")
}

func TestRegistry_BootCalledAfterBoot(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))

	require.NoError(t, reg.Boot())

	assert.Equal(t, 1, p.bootCalls)
	g, ok := container.Instance[*greeting](c)
	require.True(t, ok)
	assert.Equal(t, "eager", g.text)
}

func TestRegistry_BootIsIdempotent(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))

	assert.False(t, reg.Booted())
	require.NoError(t, reg.Boot())
	require.NoError(t, reg.Boot())

	assert.True(t, reg.Booted())
	assert.Equal(t, 1, p.bootCalls)
}

func TestRegistry_DuplicateRegisterIgnored(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	p := &eagerProvider{}

	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Register(p))

	assert.Equal(t, 1, p.registerCalls)
	assert.Len(t, reg.Providers(), 1)
}

func TestRegistry_BootResolvesAcrossProviders(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	consumer := &consumerProvider{}

	require.NoError(t, reg.Register(consumer))
	require.NoError(t, reg.Register(&eagerProvider{}))
	require.NoError(t, reg.Boot())

	require.NotNil(t, consumer.seen)
	assert.Equal(t, "eager", consumer.seen.text)

	needs, err := container.Resolve[*needsDependency](c)
	require.NoError(t, err)
	assert.NotNil(t, needs.leaf)
}

func TestRegistry_RegisterAfterBootBootsImmediately(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	require.NoError(t, reg.Boot())

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))

	assert.Equal(t, 1, p.bootCalls)
}

func TestRegistry_ErrorsAreWrapped(t *testing.T) {
	errRegister := errors.New("no api key")
	errBoot := errors.New("unreachable")

	reg := container.NewProviderRegistry(container.New())
	err := reg.Register(&failingProvider{registerErr: errRegister})
	require.ErrorIs(t, err, errRegister)
	assert.Contains(t, err.Error(), "register *container_test.failingProvider")
	assert.Empty(t, reg.Providers(), "a provider that fails to register is not kept")

	require.NoError(t, reg.Register(&failingProvider{bootErr: errBoot}))
	err = reg.Boot()
	require.ErrorIs(t, err, errBoot)
	assert.Contains(t, err.Error(), "boot *container_test.failingProvider")
}

func TestRegistry_Container(t *testing.T) {
	c := container.New()
	assert.Same(t, c, container.NewProviderRegistry(c).Container())
}

func TestBaseProvider_BootIsNoop(t *testing.T) {
	var p container.BaseProvider
	assert.NoError(t, p.Boot(container.New()))
}
