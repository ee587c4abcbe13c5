package image

// Carousel хранит выбранный для просмотра индекс и держит его в допустимых границах
type Carousel struct {
	count    int
	selected int
}

func NewCarousel(count int) *Carousel {
	c := &Carousel{}
	c.Reset(count)
	return c
}

// Reset вызывается после перезагрузки списка изображений
func (c *Carousel) Reset(count int) {
	if count < 0 {
		count = 0
	}
	c.count = count
	c.clamp()
}

// Select выбирает изображение. Индекс за пределами списка прижимается к краю.
func (c *Carousel) Select(i int) int {
	if c.count == 0 {
		return -1
	}
	c.selected = i
	c.clamp()
	return c.selected
}

func (c *Carousel) Next() int {
	return c.Select(c.selected + 1)
}

func (c *Carousel) Prev() int {
	return c.Select(c.selected - 1)
}

// Selected возвращает текущий индекс или -1 для пустого списка
func (c *Carousel) Selected() int {
	if c.count == 0 {
		return -1
	}
	return c.selected
}

func (c *Carousel) clamp() {
	switch {
	case c.count == 0:
		c.selected = 0
	case c.selected >= c.count:
		c.selected = c.count - 1
	case c.selected < 0:
		c.selected = 0
	}
}
