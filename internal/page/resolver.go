package page

import "time"

// Resolve tries each descriptor in order and returns the first target that
// becomes visible within the per-candidate timeout, along with the
// descriptor that matched. A candidate that times out does not block the
// ones after it beyond its own wait. Returns ErrNotFound when the chain
// exhausts.
func Resolve(p Provider, chain []Descriptor, timeout time.Duration) (Target, Descriptor, error) {
	for _, d := range chain {
		t, err := p.Resolve(d.Selector, timeout)
		if err != nil {
			continue
		}
		return t, d, nil
	}
	return nil, Descriptor{}, ErrNotFound
}
