// Package testfixtures provides spec documents used for testing the inversion packages.
package testfixtures

// TestAPI is the reference document: a string alias, a primitive tuple and a
// struct with one nested struct field.
const TestAPI = `{
  "inversionApiSpec": {
    "id": "kwSMYpO3kr5yLvTNR3KR4",
    "title": "Test Api",
    "revision": 0,
    "errorType": "error",
    "unique": true,
    "features": {
      "default": {
        "stablizedRevision": 0
      }
    },
    "unstableFeatures": {},
    "types": {
      "error": {
        "doc": "error type",
        "type": "string"
      },
      "callOne": {
        "doc": "a tuple type",
        "type": "tuple",
        "content": [
          { "index": 0, "content": { "doc": "first tuple item", "type": "bool" } },
          { "index": 1, "content": { "doc": "second", "type": "u32" } }
        ]
      },
      "callTwo": {
        "doc": "a struct type",
        "type": "struct",
        "content": {
          "yay": { "index": 0, "content": { "doc": "yay", "type": "bool" } },
          "age": { "index": 1, "content": { "doc": "age", "type": "u32" } },
          "sub": {
            "index": 2,
            "content": {
              "doc": "a sub struct",
              "type": "struct",
              "content": {
                "yay": { "index": 0, "content": { "doc": "yay", "type": "bool" } },
                "age": { "index": 1, "content": { "doc": "age", "type": "u32" } }
              }
            }
          }
        }
      }
    },
    "callsOut": {},
    "callsIn": {}
  }
}`

// TestAPIYAML is TestAPI written as YAML.
const TestAPIYAML = `inversionApiSpec:
  id: kwSMYpO3kr5yLvTNR3KR4
  title: Test Api
  revision: 0
  errorType: error
  types:
    error:
      doc: error type
      type: string
    callOne:
      doc: a tuple type
      type: tuple
      content:
        - index: 0
          content: {doc: first tuple item, type: bool}
        - index: 1
          content: {doc: second, type: u32}
    callTwo:
      doc: a struct type
      type: struct
      content:
        yay: {index: 0, content: {doc: yay, type: bool}}
        age: {index: 1, content: {doc: age, type: u32}}
        sub:
          index: 2
          content:
            doc: a sub struct
            type: struct
            content:
              yay: {index: 0, content: {doc: yay, type: bool}}
              age: {index: 1, content: {doc: age, type: u32}}
`

// Reordered declares struct fields and tuple elements out of index order,
// including a duplicated index.
const Reordered = `{
  "inversionApiSpec": {
    "title": "Reordered",
    "types": {
      "pair": {
        "type": "struct",
        "content": {
          "a": { "index": 1, "content": { "type": "bool" } },
          "b": { "index": 0, "content": { "type": "u32" } }
        }
      },
      "triple": {
        "type": "tuple",
        "content": [
          { "index": 2, "content": { "type": "string" } },
          { "index": 0, "content": { "type": "bool" } },
          { "index": 1, "content": { "type": "u32" } }
        ]
      },
      "ties": {
        "type": "struct",
        "content": {
          "second": { "index": 1, "content": { "type": "bool" } },
          "firstA": { "index": 0, "content": { "type": "u32" } },
          "firstB": { "index": 0, "content": { "type": "string" } }
        }
      }
    }
  }
}`

// Nested exercises composites inside tuples and structs two levels deep, plus
// an unknown type discriminator.
const Nested = `{
  "inversionApiSpec": {
    "title": "Nested",
    "revision": 3,
    "types": {
      "event": {
        "doc": "an event",
        "type": "tuple",
        "content": [
          { "index": 0, "content": { "type": "string", "doc": "kind" } },
          {
            "index": 1,
            "content": {
              "doc": "payload",
              "type": "struct",
              "content": {
                "userName": { "index": 0, "content": { "type": "string" } },
                "location": {
                  "index": 1,
                  "content": {
                    "type": "tuple",
                    "content": [
                      { "index": 0, "content": { "type": "u32" } },
                      { "index": 1, "content": { "type": "u32" } }
                    ]
                  }
                }
              }
            }
          }
        ]
      },
      "mystery": { "doc": "not supported", "type": "f64" }
    }
  }
}`
