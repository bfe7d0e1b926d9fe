package exporter

import (
	"github.com/arthur-debert/cmdmatch/pkg/errors"
)

// Factory combines a video and an audio codec. It keeps no reference to
// the exporters it creates.
type Factory struct {
	Video func(Reporter) VideoExporter
	Audio func(Reporter) AudioExporter
}

// New creates a fresh pair of exporters reporting to r
func (f Factory) New(r Reporter) Media {
	return Media{Video: f.Video(r), Audio: f.Audio(r)}
}

// qualities is in presentation order; factories is built from it once and
// never written afterwards.
var qualities = []struct {
	name    string
	factory Factory
}{
	{"low", Factory{Video: H264BPVideo, Audio: AACAudio}},
	{"high", Factory{Video: H264Hi422PVideo, Audio: AACAudio}},
	{"master", Factory{Video: LosslessVideo, Audio: WAVAudio}},
}

var factories = func() map[string]Factory {
	m := make(map[string]Factory, len(qualities))
	for _, q := range qualities {
		m[q.name] = q.factory
	}
	return m
}()

// Lookup returns the factory for an export quality
func Lookup(quality string) (Factory, error) {
	f, ok := factories[quality]
	if !ok {
		return Factory{}, errors.Newf(errors.ErrUnknownQuality, "Unknown output quality option: %s.", quality).
			WithDetail("quality", quality).
			WithDetail("allowed", Qualities())
	}
	return f, nil
}

// Qualities lists the known export qualities, lowest first
func Qualities() []string {
	names := make([]string, 0, len(qualities))
	for _, q := range qualities {
		names = append(names, q.name)
	}
	return names
}
