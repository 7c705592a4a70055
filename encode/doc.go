// Package encode writes ir nodes as JSON or YAML.
//
// # Usage
//
//	node, _ := parse.ParseString(`{name: alice, age: 30}`)
//	err := encode.Encode(node, os.Stdout)
//
//	// compact YAML
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.EncodeWire(true))
//
// Mapping keys keep their order. Integer keys are written as their decimal
// string. A document still holding alias placeholders cannot be encoded.
package encode
