package configuration

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	flag "github.com/spf13/pflag"

	"github.com/statekit/actions.go/reflectutils"
)

// BoundParameter stores the pointer and the type of values that were bound using the BindParameters function.
type BoundParameter struct {
	Name         string
	ShortHand    string
	Usage        string
	DefaultVal   any
	BoundPointer any
	BoundType    reflect.Type
}

// BindParameters is a utility function that allows to define and bind a set of parameters in a single step by using a
// struct as the registry and definition for the created configuration parameters. It parses the relevant information
// from the struct using reflection and optionally provided information in the tags of its fields.
//
// The parameter names are determined by the names of the fields in the struct but they can be overridden by providing a
// name tag.
// The default value is determined by the value of the field in the struct but it can be overridden by
// providing a default tag.
// The usage information are determined by the usage tag of the field.
//
// The method supports nested structs which get translates to parameter names in the following way:
// --level1.level2.level3.parameterName
//
// The first level is determined by the given namespace parameter.
func (c *Configuration) BindParameters(flagset *flag.FlagSet, namespace string, pointerToStruct interface{}) {
	val := reflect.ValueOf(pointerToStruct).Elem()
	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		name := namespace + "."
		if tagName, exists := typeField.Tag.Lookup("name"); exists {
			name += tagName
		} else {
			name += LowerCamelCase(typeField.Name)
		}

		shortHand, _ := typeField.Tag.Lookup("shorthand")
		usage, _ := typeField.Tag.Lookup("usage")

		addParameter := func(name string, shortHand string, usage string, defaultVal any, valueField reflect.Value) {
			c.boundParameters[strings.ToLower(name)] = &BoundParameter{
				Name:         name,
				ShortHand:    shortHand,
				Usage:        usage,
				DefaultVal:   defaultVal,
				BoundPointer: valueField.Addr().Interface(),
				BoundType:    valueField.Type(),
			}
			c.boundParametersMapping[valueField.Addr()] = name
		}

		if tagNoFlag, exists := typeField.Tag.Lookup("noflag"); exists && tagNoFlag == "true" {
			if err := c.SetDefault(name, valueField.Interface()); err != nil {
				panic(fmt.Sprintf("could not set default value of %s, error: %s", name, err))
			}
			addParameter(name, shortHand, usage, valueField.Interface(), valueField)

			continue
		}

		// only use the default value from the tags if the value is the zero value
		isZeroValue := valueField.IsZero()

		//nolint:forcetypeassert // false positive
		switch defaultValue := valueField.Interface().(type) {
		case bool:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseBool(tagDefaultValue)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = value
			}
			flagset.BoolVarP(valueField.Addr().Interface().(*bool), name, shortHand, defaultValue, usage)

		case time.Duration:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				parsedDuration, err := time.ParseDuration(tagDefaultValue)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = parsedDuration
			}
			flagset.DurationVarP(valueField.Addr().Interface().(*time.Duration), name, shortHand, defaultValue, usage)

		case float32:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseFloat(tagDefaultValue, 32)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = float32(value)
			}
			flagset.Float32VarP(valueField.Addr().Interface().(*float32), name, shortHand, defaultValue, usage)

		case float64:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseFloat(tagDefaultValue, 64)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = value
			}
			flagset.Float64VarP(valueField.Addr().Interface().(*float64), name, shortHand, defaultValue, usage)

		case int:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseInt(tagDefaultValue, 10, 64)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = int(value)
			}
			flagset.IntVarP(valueField.Addr().Interface().(*int), name, shortHand, defaultValue, usage)

		case int8:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseInt(tagDefaultValue, 10, 8)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = int8(value)
			}
			flagset.Int8VarP(valueField.Addr().Interface().(*int8), name, shortHand, defaultValue, usage)

		case int16:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseInt(tagDefaultValue, 10, 16)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = int16(value)
			}
			flagset.Int16VarP(valueField.Addr().Interface().(*int16), name, shortHand, defaultValue, usage)

		case int32:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseInt(tagDefaultValue, 10, 32)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = int32(value)
			}
			flagset.Int32VarP(valueField.Addr().Interface().(*int32), name, shortHand, defaultValue, usage)

		case int64:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseInt(tagDefaultValue, 10, 64)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = value
			}
			flagset.Int64VarP(valueField.Addr().Interface().(*int64), name, shortHand, defaultValue, usage)

		case string:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				defaultValue = tagDefaultValue
			}
			flagset.StringVarP(valueField.Addr().Interface().(*string), name, shortHand, defaultValue, usage)

		case uint:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseUint(tagDefaultValue, 10, 64)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = uint(value)
			}
			flagset.UintVarP(valueField.Addr().Interface().(*uint), name, shortHand, defaultValue, usage)

		case uint8:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseUint(tagDefaultValue, 10, 8)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = uint8(value)
			}
			flagset.Uint8VarP(valueField.Addr().Interface().(*uint8), name, shortHand, defaultValue, usage)

		case uint16:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseUint(tagDefaultValue, 10, 16)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = uint16(value)
			}
			flagset.Uint16VarP(valueField.Addr().Interface().(*uint16), name, shortHand, defaultValue, usage)

		case uint32:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseUint(tagDefaultValue, 10, 32)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = uint32(value)
			}
			flagset.Uint32VarP(valueField.Addr().Interface().(*uint32), name, shortHand, defaultValue, usage)

		case uint64:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				value, err := strconv.ParseUint(tagDefaultValue, 10, 64)
				if err != nil {
					panic(fmt.Sprintf("could not parse default value of '%s', error: %s", name, err))
				}

				defaultValue = value
			}
			flagset.Uint64VarP(valueField.Addr().Interface().(*uint64), name, shortHand, defaultValue, usage)

		case []string:
			if tagDefaultValue, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				if len(tagDefaultValue) == 0 {
					defaultValue = []string{}
				} else {
					defaultValue = strings.Split(tagDefaultValue, ",")
				}
			}
			flagset.StringSliceVarP(valueField.Addr().Interface().(*[]string), name, shortHand, defaultValue, usage)

		case map[string]string:
			if _, exists := typeField.Tag.Lookup("default"); exists && isZeroValue {
				panic(fmt.Sprintf("passing default value of '%s' via tag not allowed", name))
			}
			flagset.StringToStringVarP(valueField.Addr().Interface().(*map[string]string), name, shortHand, defaultValue, usage)

		default:
			if valueField.Kind() == reflect.Slice {
				panic(fmt.Sprintf("could not bind '%s' because it is a slice value. did you forget the 'noflag:\"true\"' tag?", name))
			}

			// recursively walk the value, but do no add it as a parameter
			c.BindParameters(flagset, name, valueField.Addr().Interface())

			continue
		}
		addParameter(name, shortHand, usage, valueField.Interface(), valueField)
	}
}

// UpdateBoundParameters updates parameters that were bound using the BindParameters method with the current values in
// the configuration.
func (c *Configuration) UpdateBoundParameters() {
	for _, boundParameter := range c.boundParameters {
		parameterName := boundParameter.Name

		//nolint:forcetypeassert // type switch with reflect.Type
		switch boundParameter.BoundType {
		case reflectutils.BoolType:
			*(boundParameter.BoundPointer.(*bool)) = c.Bool(parameterName)
		case reflectutils.TimeDurationType:
			*(boundParameter.BoundPointer.(*time.Duration)) = c.Duration(parameterName)
		case reflectutils.Float32Type:
			*(boundParameter.BoundPointer.(*float32)) = float32(c.Float64(parameterName))
		case reflectutils.Float64Type:
			*(boundParameter.BoundPointer.(*float64)) = c.Float64(parameterName)
		case reflectutils.IntType:
			*(boundParameter.BoundPointer.(*int)) = c.Int(parameterName)
		case reflectutils.Int8Type:
			*(boundParameter.BoundPointer.(*int8)) = int8(c.Int(parameterName))
		case reflectutils.Int16Type:
			*(boundParameter.BoundPointer.(*int16)) = int16(c.Int(parameterName))
		case reflectutils.Int32Type:
			*(boundParameter.BoundPointer.(*int32)) = int32(c.Int(parameterName))
		case reflectutils.Int64Type:
			*(boundParameter.BoundPointer.(*int64)) = c.Int64(parameterName)
		case reflectutils.StringType:
			*(boundParameter.BoundPointer.(*string)) = c.String(parameterName)
		case reflectutils.UintType:
			*(boundParameter.BoundPointer.(*uint)) = uint(c.Int(parameterName))
		case reflectutils.Uint8Type:
			*(boundParameter.BoundPointer.(*uint8)) = uint8(c.Int(parameterName))
		case reflectutils.Uint16Type:
			*(boundParameter.BoundPointer.(*uint16)) = uint16(c.Int(parameterName))
		case reflectutils.Uint32Type:
			*(boundParameter.BoundPointer.(*uint32)) = uint32(c.Int(parameterName))
		case reflectutils.Uint64Type:
			*(boundParameter.BoundPointer.(*uint64)) = uint64(c.Int64(parameterName))
		case reflectutils.StringSliceType:
			*(boundParameter.BoundPointer.(*[]string)) = c.Strings(parameterName)
		case reflectutils.StringMapType:
			*(boundParameter.BoundPointer.(*map[string]string)) = c.StringMap(parameterName)

		default:
			// we need to create a new empty object of the same type,
			// otherwise we may only overwrite first values of a slice of bigger length
			newBoundParameterPointer := reflect.New(boundParameter.BoundType)
			newBoundParameter := newBoundParameterPointer.Interface()

			// if we don't know the type, we try to unmarshal it
			if err := c.Unmarshal(parameterName, newBoundParameter); err != nil {
				panic(fmt.Sprintf("could not unmarshal value of '%s', error: %s", parameterName, err))
			}

			// Overwrite the original value with the new value
			reflect.ValueOf(boundParameter.BoundPointer).Elem().Set(newBoundParameterPointer.Elem())
		}
	}
}

// GetParameterPath returns the path to the parameter with the given name.
// It needs to be called with a pointer to the struct field that was bound to retrieve the path.
func (c *Configuration) GetParameterPath(parameter any) string {
	return c.boundParametersMapping[reflect.ValueOf(parameter)]
}

// LowerCamelCase converts the first "word" of a string to lower case.
func LowerCamelCase(str string) string {
	runes := []rune(str)
	runeCount := len(runes)

	if runeCount == 0 || unicode.IsLower(runes[0]) {
		return str
	}

	runes[0] = unicode.ToLower(runes[0])
	if runeCount == 1 || unicode.IsLower(runes[1]) {
		return string(runes)
	}

	for i := 1; i < runeCount; i++ {
		if i+1 < runeCount && unicode.IsLower(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}
