package store

import (
	"cxdash/models"
	"os"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// File serves a record sequence read once from a YAML file.
type File struct {
	path    string
	records []models.MonthlyRecord
}

type fileRecord struct {
	Month        string   `yaml:"month"`
	CallVolume   *float64 `yaml:"callVolume"`
	Satisfaction *float64 `yaml:"satisfaction"`
	ResponseTime *float64 `yaml:"responseTime"`
}

type fileContents struct {
	Records []fileRecord `yaml:"records"`
}

// NewProvider returns the built-in sequence when path is empty, otherwise the sequence in the file at path.
func NewProvider(path string) (Provider, error) {
	if path == "" {
		return Static{}, nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read data file", goerr.V("path", path))
	}

	records, err := ParseYAML(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load data file", goerr.V("path", path))
	}

	return &File{path: path, records: records}, nil
}

// ParseYAML decodes and validates a record sequence. Every field must be present.
func ParseYAML(data []byte) ([]models.MonthlyRecord, error) {
	var contents fileContents
	if err := yaml.Unmarshal(data, &contents); err != nil {
		return nil, goerr.Wrap(err, "failed to decode records")
	}

	records := make([]models.MonthlyRecord, 0, len(contents.Records))
	for i, fr := range contents.Records {
		if fr.CallVolume == nil || fr.Satisfaction == nil || fr.ResponseTime == nil {
			return nil, goerr.Wrap(models.ErrInvalidRecord, "record is missing a field",
				goerr.V("index", i), goerr.V("month", fr.Month))
		}

		r, err := models.NewMonthlyRecord(fr.Month, *fr.CallVolume, *fr.Satisfaction, *fr.ResponseTime)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid record", goerr.V("index", i))
		}
		records = append(records, r)
	}

	if err := models.ValidateSequence(records); err != nil {
		return nil, err
	}

	return records, nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Records() []models.MonthlyRecord {
	return slices.Clone(f.records)
}
