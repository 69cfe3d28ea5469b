package gallery

import "fmt"

// Carousel walks an ordered image list with wrap-around.
type Carousel struct {
	images []string
	index  int
}

func NewCarousel(images []string) *Carousel {
	return &Carousel{images: append([]string(nil), images...)}
}

func (c *Carousel) Len() int   { return len(c.images) }
func (c *Carousel) Index() int { return c.index }
func (c *Carousel) Images() []string {
	return append([]string(nil), c.images...)
}

// Current is "" for an empty carousel.
func (c *Carousel) Current() string {
	if len(c.images) == 0 {
		return ""
	}
	return c.images[c.index]
}

func (c *Carousel) Next() {
	if n := len(c.images); n > 0 {
		c.index = (c.index + 1) % n
	}
}

func (c *Carousel) Prev() {
	if n := len(c.images); n > 0 {
		c.index = (c.index - 1 + n) % n
	}
}

// Select jumps to a thumbnail.
func (c *Carousel) Select(i int) error {
	if i < 0 || i >= len(c.images) {
		return fmt.Errorf("image %d out of range [0,%d)", i, len(c.images))
	}
	c.index = i
	return nil
}
