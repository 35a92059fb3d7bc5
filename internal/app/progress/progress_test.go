package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledManager(t *testing.T) {
	pm := NewManager(Config{Enabled: false})
	bar := pm.NewBar(3, "Reconciling", "jobs")

	assert.NotPanics(t, func() {
		bar.Increment()
		bar.Complete()
		pm.Wait()
	})
}

func TestEnabledManager(t *testing.T) {
	var out bytes.Buffer
	pm := NewManager(Config{Enabled: true, Writer: &out})
	bar := pm.NewBar(2, "Reconciling", "jobs")

	bar.Increment()
	bar.Increment()
	pm.Wait()

	assert.Contains(t, out.String(), "Reconciling")
}

func TestCompleteEarly(t *testing.T) {
	var out bytes.Buffer
	pm := NewManager(Config{Enabled: true, Writer: &out})
	bar := pm.NewBar(10, "Reconciling", "jobs")

	bar.Increment()
	bar.Complete()
	pm.Wait()

	assert.NotEmpty(t, out.String())
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))
	assert.True(t, ShouldShowProgress(true))
}
