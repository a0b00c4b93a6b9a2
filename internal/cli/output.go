package cli

import (
	"encoding/xml"

	"github.com/spf13/cobra"

	"github.com/fuinorg/objects4go/codec"
	"github.com/fuinorg/objects4go/errors"
	"github.com/fuinorg/objects4go/hours"
)

type scheduleResult struct {
	XMLName  xml.Name `xml:"schedule" json:"-" yaml:"-"`
	Input    string   `xml:"input,attr" json:"input" yaml:"input"`
	Schedule string   `xml:",chardata" json:"schedule" yaml:"schedule"`
}

type validationResult struct {
	XMLName xml.Name `xml:"validation" json:"-" yaml:"-"`
	Type    string   `xml:"type,attr" json:"type" yaml:"type"`
	Input   string   `xml:"input,attr" json:"input" yaml:"input"`
	Valid   bool     `xml:",chardata" json:"valid" yaml:"valid"`
}

type diffResult struct {
	XMLName xml.Name          `xml:"diff" json:"-" yaml:"-"`
	From    string            `xml:"from,attr" json:"from" yaml:"from"`
	To      string            `xml:"to,attr" json:"to" yaml:"to"`
	Changes []hours.DayChange `xml:"change" json:"changes" yaml:"changes"`
}

type answerResult struct {
	XMLName  xml.Name `xml:"answer" json:"-" yaml:"-"`
	Question string   `xml:"question,attr" json:"question" yaml:"question"`
	Answer   bool     `xml:",chardata" json:"answer" yaml:"answer"`
}

// write encodes structured in the configured format. The text format
// prints text instead.
func (a *app) write(cmd *cobra.Command, structured, text any) error {
	v := structured
	if a.settings.OutputFormat == string(codec.FormatText) {
		v = text
	}
	data, err := a.codec.Encode(v)
	if err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// schedule renders w according to the compress setting.
func (a *app) schedule(w hours.WeeklyOpeningHours) string {
	if a.settings.Compress {
		return w.Compress()
	}
	return w.String()
}
