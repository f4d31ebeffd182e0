package ui

// Box is the vertical extent of a card, in content rows.
type Box struct {
	ID     string
	Top    int
	Height int
}

// RevealObserver marks cards as revealed once enough of them scrolls into
// view. Revealed cards stay revealed.
type RevealObserver struct {
	threshold    float64
	bottomMargin int
	boxes        map[string]Box
	revealed     map[string]bool
}

func NewRevealObserver(threshold float64, bottomMargin int) *RevealObserver {
	return &RevealObserver{
		threshold:    threshold,
		bottomMargin: bottomMargin,
		boxes:        make(map[string]Box),
		revealed:     make(map[string]bool),
	}
}

// Observe registers boxes or updates the position of known ones.
func (o *RevealObserver) Observe(boxes ...Box) {
	for _, b := range boxes {
		o.boxes[b.ID] = b
	}
}

// Update checks every box against the viewport and returns the ids revealed
// by this call.
func (o *RevealObserver) Update(scrollTop, viewportHeight int) []string {
	top := scrollTop
	bottom := scrollTop + viewportHeight - o.bottomMargin

	var newly []string
	for id, b := range o.boxes {
		if o.revealed[id] {
			continue
		}
		if o.hit(b, top, bottom) {
			o.revealed[id] = true
			newly = append(newly, id)
		}
	}
	return newly
}

func (o *RevealObserver) Revealed(id string) bool {
	return o.revealed[id]
}

func (o *RevealObserver) hit(b Box, top, bottom int) bool {
	if b.Height <= 0 {
		return b.Top >= top && b.Top < bottom
	}
	ratio := intersectionRatio(b, top, bottom)
	return ratio > 0 && ratio >= o.threshold
}

func intersectionRatio(b Box, top, bottom int) float64 {
	lo := max(b.Top, top)
	hi := min(b.Top+b.Height, bottom)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(b.Height)
}
