package menu

type fakeImage struct {
	size Size
}

func (f fakeImage) Size() Size {
	return f.size
}

type play struct {
	node Node
	anim Animation
	done func()
}

// recordingScene keeps every call so tests can inspect the scene and finish animations by hand
type recordingScene struct {
	layers  map[Node]Layer
	visuals map[Node]Visual
	plays   []play
	played  []play
	frames  []Rect
}

func newRecordingScene() *recordingScene {
	return &recordingScene{
		layers:  make(map[Node]Layer),
		visuals: make(map[Node]Visual),
	}
}

func (s *recordingScene) Attach(node Node, layer Layer) {
	s.layers[node] = layer
}

func (s *recordingScene) Detach(node Node) {
	delete(s.layers, node)
}

func (s *recordingScene) Apply(node Node, v Visual) {
	s.visuals[node] = v
}

func (s *recordingScene) Play(node Node, anim Animation, done func()) {
	p := play{node: node, anim: anim, done: done}
	s.plays = append(s.plays, p)
	s.played = append(s.played, p)
}

func (s *recordingScene) Resize(frame Rect) {
	s.frames = append(s.frames, frame)
}

func (s *recordingScene) isAttached(node Node) bool {
	_, ok := s.layers[node]
	return ok
}

// completeAll finishes every pending animation in start order
func (s *recordingScene) completeAll() {
	for len(s.plays) > 0 {
		p := s.plays[0]
		s.plays = s.plays[1:]
		p.done()
	}
}

func (s *recordingScene) playedNamed(name string) []play {
	var out []play

	for _, p := range s.played {
		if p.anim.Name == name {
			out = append(out, p)
		}
	}

	return out
}

func (s *recordingScene) resetPlayed() {
	s.played = nil
}

type recordingGestures struct {
	handlers map[Node]func()
	policies map[Node]TapPolicy
}

func newRecordingGestures() *recordingGestures {
	return &recordingGestures{
		handlers: make(map[Node]func()),
		policies: make(map[Node]TapPolicy),
	}
}

func (g *recordingGestures) OnTap(node Node, policy TapPolicy, handler func()) {
	g.handlers[node] = handler
	g.policies[node] = policy
}

func (g *recordingGestures) Release(node Node) {
	delete(g.handlers, node)
	delete(g.policies, node)
}

func (g *recordingGestures) tap(node Node) bool {
	h, ok := g.handlers[node]
	if ok {
		h()
	}

	return ok
}

type fixedContainer struct {
	bounds Rect
}

func (c fixedContainer) Bounds() Rect {
	return c.bounds
}

func testItem(title string) *Item {
	return MustItem(ItemConfig{Size: Size{Width: 40, Height: 40}, Title: title, TitleColor: "#FFFFFF"})
}
