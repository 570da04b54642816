package shell

import (
	"net/url"
	"strings"
)

// NavigationPolicy decides which URLs may load inside the portal window.
// Only the dev server origin, extra configured origins and local files are
// allowed; everything else is refused.
type NavigationPolicy struct {
	origins map[string]struct{}
}

// NewNavigationPolicy allows devOrigin plus any extra origins. Blank or
// unparseable origins are skipped.
func NewNavigationPolicy(devOrigin string, extra ...string) *NavigationPolicy {
	p := &NavigationPolicy{origins: make(map[string]struct{})}
	for _, raw := range append([]string{devOrigin}, extra...) {
		if o, ok := origin(raw); ok {
			p.origins[o] = struct{}{}
		}
	}
	return p
}

// AllowNavigation reports whether raw may be loaded in-app.
func (p *NavigationPolicy) AllowNavigation(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Scheme, "file") {
		return true
	}
	o, ok := origin(raw)
	if !ok {
		return false
	}
	_, allowed := p.origins[o]
	return allowed
}

func origin(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), true
}
