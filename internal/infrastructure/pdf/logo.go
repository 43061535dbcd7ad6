package pdf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

// Tope de descarga del logo: una imagen de cabecera no necesita más.
const maxLogoBytes = 2 << 20

type logoAsset struct {
	data []byte
	ext  extension.Type
}

// logoFetcher descarga el logo configurado en el branding y lo cachea por
// URL: exportaciones repetidas del mismo owner no vuelven a la red.
// Solo se cachean descargas exitosas.
type logoFetcher struct {
	client *http.Client

	mu    sync.Mutex
	cache map[string]logoAsset
}

func newLogoFetcher() *logoFetcher {
	return &logoFetcher{
		client: &http.Client{Timeout: 5 * time.Second},
		cache:  make(map[string]logoAsset),
	}
}

// Fetch devuelve los bytes del logo y su formato. Falla con error si la URL
// no responde 200 o la descarga se corta; el caller decide si degradar.
func (f *logoFetcher) Fetch(ctx context.Context, url string) (logoAsset, error) {
	f.mu.Lock()
	if asset, ok := f.cache[url]; ok {
		f.mu.Unlock()
		return asset, nil
	}
	f.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return logoAsset{}, fmt.Errorf("logo %q: %w", url, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return logoAsset{}, fmt.Errorf("logo %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return logoAsset{}, fmt.Errorf("logo %q: status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return logoAsset{}, fmt.Errorf("logo %q: %w", url, err)
	}

	asset := logoAsset{data: data, ext: logoExtension(resp.Header.Get("Content-Type"), url)}
	f.mu.Lock()
	f.cache[url] = asset
	f.mu.Unlock()
	return asset, nil
}

// logoExtension decide el formato por Content-Type y, a falta de él, por el
// sufijo de la URL. El default es PNG, el formato usual de logos.
func logoExtension(contentType, url string) extension.Type {
	switch {
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return extension.Jpg
	case strings.Contains(contentType, "png"):
		return extension.Png
	}
	lower := strings.ToLower(url)
	if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
		return extension.Jpg
	}
	return extension.Png
}
