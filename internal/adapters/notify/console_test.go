package notify_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wpbuild/internal/adapters/notify"
)

func TestConsole_Notify(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsole(&buf)

	c.Notify("styles", errors.New("failed to compile stylesheet: expected \";\"\n  line 3"))

	assert.Equal(t, "\a\nERROR → styles\n  failed to compile stylesheet: expected \";\"\n    line 3\n\n", buf.String())
}

func TestConsole_NotifyNil(t *testing.T) {
	var buf bytes.Buffer
	notify.NewConsole(&buf).Notify("styles", nil)
	assert.Empty(t, buf.String())
}
