package spec

//go:generate go tool go-enum --marshal -f enums.go

// Layout of structured items on the slide canvas.
// ENUM(bullets, processSteps, cards, timeline)
type Layout int

// Mode is the per-unit rendering strategy classification.
// ENUM(auto, infographic, imageSupport, comparison, activity)
type Mode int
