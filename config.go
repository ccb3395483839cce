package heap

import (
	"os"
	"reflect"
	"strconv"
	"strings"
)

func setValue(field reflect.Value, typ reflect.Type, source string, sourceKey string, defaultValue string) {
	if !field.CanSet() {
		return
	}

	var value string
	kind := typ.Kind()

	if strings.ToLower(os.Getenv("LOCAL")) == "true" {
		source = "env"
	}

	if source == "sec" {
		if sourceKey[0] != '/' {
			sourceKey = "/var/secrets/" + sourceKey
		}

		f, err := os.ReadFile(sourceKey)
		if err != nil {
			panic(err)
		}
		value = BytesToString(f)
	} else {
		value = os.Getenv(sourceKey)
	}

	if value == "" {
		value = defaultValue
	}

	switch kind {
	case reflect.Int32:
		v, e := strconv.ParseInt(value, 10, 32)
		if e == nil {
			field.SetInt(v)
		}
	case reflect.Int, reflect.Int64:
		v, e := strconv.ParseInt(value, 10, 64)
		if e == nil {
			field.SetInt(v)
		}
	case reflect.Uint32:
		v, e := strconv.ParseUint(value, 10, 32)
		if e == nil {
			field.SetUint(v)
		}
	case reflect.Bool:
		v, e := strconv.ParseBool(value)
		if e == nil {
			field.SetBool(v)
		}
	case reflect.String:
		field.SetString(value)
	}
}

// LoadConfig reads config from ENV / secret volume. Used by the
// diagnostic daemon (cmd/heapd) to read its listen address, log level
// and configured heap size; the allocator core never reads the
// environment — its tunables are explicit constructor arguments.
//
// Example:
//
//	type Config struct {
//		ListenAddr string `env:"LISTEN_ADDR" default:":8080"`
//		HeapSize   uint32 `env:"HEAP_SIZE" default:"1048576"`
//	}
//
//	config := heap.LoadConfig[Config]()
func LoadConfig[T any]() *T {
	config := new(T)
	typ := reflect.TypeOf(*config)

	value := reflect.ValueOf(config).Elem()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		sourceKey, source := field.Tag.Get("env"), "env"
		if sourceKey == "" {
			sourceKey, source = field.Tag.Get("sec"), "sec"
		}

		defaultValue := field.Tag.Get("default")
		setValue(value.Field(i), field.Type, source, sourceKey, defaultValue)
	}

	return config
}
