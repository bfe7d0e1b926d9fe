// Package exporter holds the media export codecs and the fixed table that
// maps an export quality to the pair of codecs producing it.
package exporter

import (
	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/arthur-debert/cmdmatch/pkg/logging"
)

// Reporter receives the progress messages of an export. style.Printer
// satisfies it.
type Reporter interface {
	Say(format string, args ...interface{})
}

// VideoExporter is a video export codec
type VideoExporter interface {
	PrepareExport(viewData string) error
	DoExport(folder string) error
}

// AudioExporter is an audio export codec
type AudioExporter interface {
	PrepareExport(audioData string) error
	DoExport(folder string) error
}

// codec reports each export step. label names the codec in the prepare
// message, format in the export message.
type codec struct {
	r      Reporter
	stream string
	label  string
	format string
}

func (c codec) PrepareExport(string) error {
	c.r.Say("Preparing %s data for %s export.", c.stream, c.label)
	return nil
}

func (c codec) DoExport(folder string) error {
	if folder == "" {
		return errors.Newf(errors.ErrInvalidInput, "no destination folder for %s export", c.stream)
	}
	c.r.Say("Exporting %s data in %s format to [path]%s[/path].", c.stream, c.format, folder)
	return nil
}

// LosslessVideo is the lossless video codec
func LosslessVideo(r Reporter) VideoExporter {
	return codec{r: r, stream: "video", label: "lossless", format: "lossless"}
}

// H264BPVideo is H.264 with the Baseline profile
func H264BPVideo(r Reporter) VideoExporter {
	return codec{r: r, stream: "video", label: "H.264 (Baseline)", format: "H.264 (Baseline)"}
}

// H264Hi422PVideo is H.264 with the Hi422P profile (10-bit, 4:2:2 chroma
// sampling)
func H264Hi422PVideo(r Reporter) VideoExporter {
	return codec{r: r, stream: "video", label: "H.264 (Hi422P)", format: "H.264 (Hi422P)"}
}

// AACAudio is the AAC audio codec
func AACAudio(r Reporter) AudioExporter {
	return codec{r: r, stream: "audio", label: "AAC", format: "AAC"}
}

// WAVAudio is the lossless WAV audio codec
func WAVAudio(r Reporter) AudioExporter {
	return codec{r: r, stream: "audio", label: "WAV", format: "WAV"}
}

// Media is one video and one audio exporter working together
type Media struct {
	Video VideoExporter
	Audio AudioExporter
}

// Export prepares both streams, then exports both to folder
func (m Media) Export(folder string) error {
	logger := logging.GetLogger("exporter").With().Str("folder", folder).Logger()

	if err := m.Video.PrepareExport("placeholder_for_video_data"); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "video preparation failed")
	}
	if err := m.Audio.PrepareExport("placeholder_for_audio_data"); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "audio preparation failed")
	}
	if err := m.Video.DoExport(folder); err != nil {
		return err
	}
	if err := m.Audio.DoExport(folder); err != nil {
		return err
	}

	logger.Debug().Msg("Export finished")
	return nil
}
