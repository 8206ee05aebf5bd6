package browser

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// element adapts a Rod element to page.Target.
type element struct {
	el *rod.Element
}

func (e *element) Text() (string, error) {
	text, err := e.el.Text()
	if err != nil {
		return "", fmt.Errorf("browser: element text: %w", err)
	}
	return text, nil
}

func (e *element) HTML() (string, error) {
	html, err := e.el.HTML()
	if err != nil {
		return "", fmt.Errorf("browser: element html: %w", err)
	}
	return html, nil
}

func (e *element) Attribute(name string) (string, bool, error) {
	v, err := e.el.Attribute(name)
	if err != nil {
		return "", false, fmt.Errorf("browser: attribute %s: %w", name, err)
	}
	if v == nil {
		return "", false, nil
	}
	return *v, true, nil
}

func (e *element) Fill(text string) error {
	if err := e.el.Input(text); err != nil {
		return fmt.Errorf("browser: fill: %w", err)
	}
	return nil
}

func (e *element) Click() error {
	if err := e.el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("browser: click: %w", err)
	}
	return nil
}
