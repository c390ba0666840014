//go:build js && wasm

// Package main is the WebAssembly entry point for the desugaring
// transformer. It exposes a single global JS function, transformCode, that
// runs the full parse/lower/print pipeline over a source string.
//
// Build with:
//   GOOS=js GOARCH=wasm go build -o zerosugar.wasm ./cmd/zerosugar-wasm
//
// Usage from JavaScript:
//   <script src="wasm_exec.js"></script>
//   <script>
//     const go = new Go();
//     WebAssembly.instantiateStreaming(fetch("zerosugar.wasm"), go.importObject)
//       .then((result) => {
//         go.run(result.instance);
//         const out = transformCode("for (let i = 0; i < 3; i++) { console.log(i); }");
//         console.log(out.transformedCode, out.hadError, out.errorMessage);
//       });
//   </script>
package main

import (
	"syscall/js"

	"github.com/tidwall/sjson"
	"github.com/zerosugarjs/zerosugar/internal/engine"
)

func transformCodeJS(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return resultToJS(`{}`, "missing source argument")
	}
	source := args[0].String()

	result, err := engine.Transform(source)
	if result == nil {
		result = &engine.Result{HadError: true}
		if err != nil {
			result.ErrorMessage = err.Error()
		}
	}

	envelope := `{}`
	envelope, _ = sjson.Set(envelope, "transformedCode", result.TransformedCode)
	envelope, _ = sjson.Set(envelope, "hadError", result.HadError)
	envelope, _ = sjson.Set(envelope, "errorMessage", result.ErrorMessage)

	return resultToJS(envelope, "")
}

// resultToJS parses the JSON envelope back into a js.Value via JSON.parse,
// patching fields with sjson on the Go side rather than hand-building a
// js.ValueOf object graph for every new Result field.
func resultToJS(jsonEnvelope, fallbackErr string) interface{} {
	if fallbackErr != "" {
		jsonEnvelope = `{"hadError":true,"errorMessage":"` + fallbackErr + `"}`
	}
	jsJSON := js.Global().Get("JSON")
	return jsJSON.Call("parse", jsonEnvelope)
}

func registerAPI() {
	js.Global().Set("transformCode", js.FuncOf(transformCodeJS))
}

func main() {
	done := make(chan struct{})
	registerAPI()
	js.Global().Get("console").Call("log", "zerosugar WASM module initialized")
	<-done
}
