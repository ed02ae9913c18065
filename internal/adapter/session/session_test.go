package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IRI3V/proyecto/internal/adapter/session"
	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var httpCookie = http.Cookie{Name: session.CookieName, Value: "not-a-real-session"}

func TestStoreGet(t *testing.T) {

	t.Run("CreatesSessionAndCookie", func(t *testing.T) {
		store := session.NewStore()
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)

		sess := store.Get(w, r)
		require.NotNil(t, sess)
		assert.NotEmpty(t, sess.ID)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, session.CookieName, cookies[0].Name)
		assert.Equal(t, sess.ID, cookies[0].Value)
	})

	t.Run("ReturnsSameSessionForCookie", func(t *testing.T) {
		store := session.NewStore()
		w1 := httptest.NewRecorder()
		r1 := httptest.NewRequest("GET", "/", nil)
		sess1 := store.Get(w1, r1)
		sess1.SetCart(domain.Cart{}.Add(1, 2))

		r2 := httptest.NewRequest("GET", "/", nil)
		r2.AddCookie(w1.Result().Cookies()[0])
		sess2 := store.Get(httptest.NewRecorder(), r2)

		assert.Equal(t, sess1.ID, sess2.ID)
		require.Len(t, sess2.Cart().Entries, 1)
		assert.Equal(t, 2, sess2.Cart().Entries[0].Quantity)
	})

	t.Run("UnknownCookieMakesFreshSession", func(t *testing.T) {
		store := session.NewStore()
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&httpCookie)

		sess := store.Get(httptest.NewRecorder(), r)
		require.NotNil(t, sess)
		assert.NotEqual(t, httpCookie.Value, sess.ID)
	})
}

func TestSessionFlashes(t *testing.T) {
	store := session.NewStore()
	sess := store.Get(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	sess.Flash("success", "first")
	sess.Flash("danger", "second")

	fs := sess.PopFlashes()
	require.Len(t, fs, 2)
	assert.Equal(t, session.Flash{Level: "success", Message: "first"}, fs[0])
	assert.Equal(t, session.Flash{Level: "danger", Message: "second"}, fs[1])

	assert.Empty(t, sess.PopFlashes())
}

func TestSessionCart(t *testing.T) {
	store := session.NewStore()
	sess := store.Get(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	assert.True(t, sess.Cart().IsEmpty())

	sess.SetCart(domain.Cart{}.Add(1, 1))
	assert.False(t, sess.Cart().IsEmpty())

	sess.ClearCart()
	assert.True(t, sess.Cart().IsEmpty())
}
