package assessments

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/JaimeStill/sustainassess/internal/scoring"
)

const (
	generalPrefix  = "general_"
	specificPrefix = "niche_"
	submitField    = "submit"
)

// Field is a submitted form value. Order matches the request body.
type Field struct {
	Name  string
	Value string
}

// FromFields builds a SaveCommand from questionnaire fields. Fields named
// general_<key> and niche_<key> become answers; a name that repeats becomes
// a multi-select answer. Unprefixed fields other than submit are ignored.
func FromFields(fields []Field) SaveCommand {
	var cmd SaveCommand

	values := make(map[string][]string)
	var order []string

	for _, f := range fields {
		if f.Name == submitField {
			cmd.Submit = f.Value == "true"
			continue
		}
		if !strings.HasPrefix(f.Name, generalPrefix) && !strings.HasPrefix(f.Name, specificPrefix) {
			continue
		}
		if _, seen := values[f.Name]; !seen {
			order = append(order, f.Name)
		}
		values[f.Name] = append(values[f.Name], f.Value)
	}

	for _, name := range order {
		v := values[name]
		answer := scoring.Text(v[0])
		if len(v) > 1 {
			answer = scoring.MultiSelect(v...)
		}

		if key, ok := strings.CutPrefix(name, generalPrefix); ok {
			cmd.General.Set(key, answer)
		} else {
			cmd.Specific.Set(strings.TrimPrefix(name, specificPrefix), answer)
		}
	}

	return cmd
}

// QuestionID strips the section prefix from an upload field name.
func QuestionID(field string) string {
	if id, ok := strings.CutPrefix(field, generalPrefix); ok {
		return id
	}
	return strings.TrimPrefix(field, specificPrefix)
}

// ReadForm walks a multipart or urlencoded body in order. Value fields are
// returned; file parts with a filename are passed to onFile as they arrive.
func ReadForm(r *http.Request, onFile func(field string, f File) error) ([]Field, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	switch mediaType {
	case "multipart/form-data":
		return readMultipart(r, onFile)
	case "application/x-www-form-urlencoded":
		return readURLEncoded(r.Body)
	default:
		return nil, fmt.Errorf("%w: unsupported content type %s", ErrInvalidForm, mediaType)
	}
}

func readMultipart(r *http.Request, onFile func(string, File) error) ([]Field, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	var fields []Field
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return fields, nil
		}
		if err != nil {
			return nil, bodyError(err)
		}

		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			return nil, bodyError(err)
		}

		if part.FileName() == "" {
			if _, isFile := part.Header["Content-Type"]; !isFile {
				fields = append(fields, Field{Name: part.FormName(), Value: string(data)})
			}
			continue
		}

		f := File{
			Name:        part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Data:        data,
		}
		if err := onFile(part.FormName(), f); err != nil {
			return nil, err
		}
	}
}

func readURLEncoded(body io.Reader) ([]Field, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, bodyError(err)
	}

	var fields []Field
	for pair := range strings.SplitSeq(string(raw), "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")

		name, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		fields = append(fields, Field{Name: name, Value: value})
	}
	return fields, nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return ErrTooLarge
	}
	return fmt.Errorf("%w: %v", ErrInvalidForm, err)
}
