package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	t.Run("missing session yields a detached one", func(t *testing.T) {
		s := Session(context.Background())
		assert.NotEmpty(t, s.Referentienummer())
	})

	t.Run("injected session is shared", func(t *testing.T) {
		sess := NewSession("ref-1")
		ctx := WithSession(context.Background(), sess)

		Session(ctx).SetFunctie("GeefLijstZaakdocumenten")
		Session(ctx).SetKenmerk("zaakidentificatie:ZK-1")

		assert.Equal(t, "ref-1", sess.Referentienummer())
		assert.Equal(t, "GeefLijstZaakdocumenten", sess.Functie())
		assert.Equal(t, "zaakidentificatie:ZK-1", sess.Kenmerk())
	})
}

func TestNow(t *testing.T) {
	fixed := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, fixed, Now(WithTime(context.Background(), fixed)))
	assert.WithinDuration(t, time.Now(), Now(context.Background()), time.Second)
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
	assert.Equal(t, "req-1", RequestID(WithRequestID(context.Background(), "req-1")))
}
