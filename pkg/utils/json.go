package utils

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	var value any = in

	if reflect.TypeOf(in) == reflect.TypeOf([]byte{}) {
		var decoded any
		if err := json.Unmarshal(in.([]byte), &decoded); err != nil {
			fmt.Println(err)
			return string(in.([]byte))
		}
		value = decoded
	}

	out, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		fmt.Println(err)
	}

	return string(out)
}
