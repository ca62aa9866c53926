package wrappers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bindleio/bindle/internal/adapters/cache"
	"github.com/bindleio/bindle/internal/adapters/wrappers"
	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports/mocks"
	"github.com/bindleio/bindle/internal/engine/keys"
)

const mount = "/bindle-assets/"

func request(ctrl *gomock.Controller, secure bool) *mocks.MockRequestContext {
	req := mocks.NewMockRequestContext(ctrl)
	req.EXPECT().CurrentURL().Return("http://example.com/page").AnyTimes()
	req.EXPECT().BaseURL().Return("http://example.com").AnyTimes()
	req.EXPECT().Secure().Return(secure).AnyTimes()
	req.EXPECT().ParamNames().Return(nil).AnyTimes()
	return req
}

func assetWith(kind, location string) domain.Asset {
	return domain.Asset{
		Name: "app", Version: "1.0.0", Type: domain.TypeScript,
		Locations: map[string]string{kind: location},
	}
}

func TestClasspath_WrapRehostsContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsys := fstest.MapFS{"js/app.js": &fstest.MapFile{Data: []byte("var a = 1;")}}
	store := cache.NewMemory()
	w := wrappers.NewClasspath(fsys, store, mount)

	urls, err := w.WrapLocations(assetWith(wrappers.KindClasspath, "js/app.js"), request(ctrl, false))
	require.NoError(t, err)
	require.Len(t, urls, 1)
	require.True(t, strings.HasPrefix(urls[0], "http://example.com"+mount))

	key := keys.FromDeliveryURL(urls[0], mount)
	content, ok := store.GetContent(key)
	require.True(t, ok)
	require.Equal(t, "var a = 1;", content)
}

func TestClasspath_LeadingSlashTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsys := fstest.MapFS{"js/app.js": &fstest.MapFile{Data: []byte("var a = 1;")}}
	w := wrappers.NewClasspath(fsys, cache.NewMemory(), mount)

	content, err := w.Content(assetWith(wrappers.KindClasspath, "/js/app.js"), request(ctrl, false))
	require.NoError(t, err)
	require.Equal(t, "var a = 1;", content)
}

func TestClasspath_MissingFileFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := wrappers.NewClasspath(fstest.MapFS{}, cache.NewMemory(), mount)

	_, err := w.WrapLocations(assetWith(wrappers.KindClasspath, "js/missing.js"), request(ctrl, false))
	require.Error(t, err)
}

func TestWebapp_WrapPrependsBaseURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := wrappers.NewWebapp(fstest.MapFS{})

	urls, err := w.WrapLocations(assetWith(wrappers.KindWebapp, "js/app.js"), request(ctrl, false))
	require.NoError(t, err)
	require.Equal(t, []string{"http://example.com/js/app.js"}, urls)

	urls, err = w.WrapLocations(assetWith(wrappers.KindWebapp, "/js/app.js"), request(ctrl, false))
	require.NoError(t, err)
	require.Equal(t, []string{"http://example.com/js/app.js"}, urls)
}

func TestWebapp_ContentFromWebroot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsys := fstest.MapFS{"js/app.js": &fstest.MapFile{Data: []byte("var a = 1;")}}
	w := wrappers.NewWebapp(fsys)

	content, err := w.Content(assetWith(wrappers.KindWebapp, "/js/app.js"), request(ctrl, false))
	require.NoError(t, err)
	require.Equal(t, "var a = 1;", content)

	// A previously wrapped location still resolves against the webroot.
	content, err = w.Content(assetWith(wrappers.KindWebapp, "http://example.com/js/app.js"), request(ctrl, false))
	require.NoError(t, err)
	require.Equal(t, "var a = 1;", content)
}

func TestCDN_ProtocolRelativeCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := wrappers.NewCDN()
	asset := assetWith(wrappers.KindCDN, "//cdn.example.com/app.js")

	urls, err := w.WrapLocations(asset, request(ctrl, false))
	require.NoError(t, err)
	require.Equal(t, []string{"http://cdn.example.com/app.js"}, urls)

	urls, err = w.WrapLocations(asset, request(ctrl, true))
	require.NoError(t, err)
	require.Equal(t, []string{"https://cdn.example.com/app.js"}, urls)
}

func TestCDN_AbsoluteURLUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := wrappers.NewCDN()

	urls, err := w.WrapLocations(assetWith(wrappers.KindCDN, "https://cdn.example.com/app.js"), request(ctrl, false))
	require.NoError(t, err)
	require.Equal(t, []string{"https://cdn.example.com/app.js"}, urls)
}

func TestCDN_Content(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/app.js":
			_, _ = w.Write([]byte("var a = 1;"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	w := wrappers.NewCDN()

	content, err := w.Content(assetWith(wrappers.KindCDN, server.URL+"/app.js"), request(ctrl, false))
	require.NoError(t, err)
	require.Equal(t, "var a = 1;", content)

	_, err = w.Content(assetWith(wrappers.KindCDN, server.URL+"/missing.js"), request(ctrl, false))
	require.ErrorIs(t, err, domain.ErrContentFetch)
}

func TestTemplated_SubstitutesParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fsys := fstest.MapFS{"js/config.js": &fstest.MapFile{Data: []byte("var user = '::userName';")}}
	store := cache.NewMemory()
	w := wrappers.NewTemplated(fsys, store, mount, false)

	req := mocks.NewMockRequestContext(ctrl)
	req.EXPECT().CurrentURL().Return("http://example.com/page").AnyTimes()
	req.EXPECT().BaseURL().Return("http://example.com").AnyTimes()
	req.EXPECT().Secure().Return(false).AnyTimes()
	req.EXPECT().ParamNames().Return([]string{"::userName"}).AnyTimes()
	req.EXPECT().Param("::userName").Return("alice", true).AnyTimes()

	urls, err := w.WrapLocations(assetWith(wrappers.KindTemplated, "js/config.js"), req)
	require.NoError(t, err)
	require.Len(t, urls, 1)

	key := keys.FromDeliveryURL(urls[0], mount)
	content, ok := store.GetContent(key)
	require.True(t, ok)
	require.Equal(t, "var user = 'alice';", content)
}

func TestTemplated_DevModeRereadsTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	file := &fstest.MapFile{Data: []byte("v1")}
	fsys := fstest.MapFS{"t.js": file}
	w := wrappers.NewTemplated(fsys, cache.NewMemory(), mount, true)

	content, err := w.Content(assetWith(wrappers.KindTemplated, "t.js"), request(ctrl, false))
	require.NoError(t, err)
	require.Equal(t, "v1", content)

	file.Data = []byte("v2")
	content, err = w.Content(assetWith(wrappers.KindTemplated, "t.js"), request(ctrl, false))
	require.NoError(t, err)
	require.Equal(t, "v2", content)
}

func TestTemplated_NonDevCachesTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	file := &fstest.MapFile{Data: []byte("v1")}
	fsys := fstest.MapFS{"t.js": file}
	w := wrappers.NewTemplated(fsys, cache.NewMemory(), mount, false)

	_, err := w.Content(assetWith(wrappers.KindTemplated, "t.js"), request(ctrl, false))
	require.NoError(t, err)

	file.Data = []byte("v2")
	content, err := w.Content(assetWith(wrappers.KindTemplated, "t.js"), request(ctrl, false))
	require.NoError(t, err)
	require.Equal(t, "v1", content, "template is cached outside dev mode")
}
