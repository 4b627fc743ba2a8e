// Package templating lets the configuration file pull values out of the
// environment at load time. Only three template functions are offered: env,
// default and required. That is enough to point a run at a different log
// path or syslog server without editing the file.
package templating

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"text/template"
)

// optionalString wraps a string that may be absent. Rendering an absent
// value produces an empty string rather than an error so that missing
// environment variables can be backfilled with the default function.
type optionalString struct {
	ptr *string
}

func (s optionalString) String() string {
	if s.ptr == nil {
		return ""
	}
	return *s.ptr
}

var funcMap = template.FuncMap{
	"env":      envLookup,
	"default":  defaultValue,
	"required": requiredValue,
}

func envLookup(key string) optionalString {
	value, ok := os.LookupEnv(key)
	if !ok {
		return optionalString{nil}
	}
	return optionalString{&value}
}

func defaultValue(args ...interface{}) (string, error) {
	for _, arg := range args {
		if arg == nil {
			continue
		}
		switch v := arg.(type) {
		case string:
			return v, nil
		case *string:
			if v != nil {
				return *v, nil
			}
		case optionalString:
			if v.ptr != nil {
				return *v.ptr, nil
			}
		default:
			return "", fmt.Errorf("default: unsupported type '%T'", v)
		}
	}

	return "", errors.New("default: all arguments are nil")
}

func requiredValue(arg interface{}) (string, error) {
	if arg == nil {
		return "", errors.New("required argument is missing")
	}

	switch value := arg.(type) {
	case string:
		return value, nil
	case *string:
		if value != nil {
			return *value, nil
		}
	case optionalString:
		if value.ptr != nil {
			return *value.ptr, nil
		}
	default:
		return "", fmt.Errorf("required: unsupported type '%T'", value)
	}
	return "", nil
}

// GenerateTemplate will action all the functions on the configuration file.
func GenerateTemplate(source []byte) ([]byte, error) {
	tplt, err := template.New("configfile").Funcs(funcMap).Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("failed to create template. Error: %s", err)
	}

	var buffer bytes.Buffer
	if err = tplt.Execute(&buffer, nil); err != nil {
		return nil, fmt.Errorf("failed to transform template. Error: %s", err)
	}
	return buffer.Bytes(), nil
}
