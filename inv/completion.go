package main

import (
	"github.com/etnz/inventory/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the inv command line for shell completion.
func completion() *complete.Command {
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"file":     predict.Files("*.txt"),
			"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "JPY", "CAD"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"menu": {},
			"add": {Flags: map[string]complete.Predictor{
				"d": predict.Something,
				"q": predict.Something,
				"w": predict.Something,
				"r": predict.Something,
			}},
			"show": {Flags: map[string]complete.Predictor{
				"n": predict.Something,
			}},
			"list": {Flags: map[string]complete.Predictor{
				"html": predict.Nothing,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"path": predict.Set{"$[*]", "$[*].description", "$[*].quantity", "$[*].wholesale", "$[*].retail"},
			}},
			"check":    {},
			"topic":    {Args: predict.Set(topics)},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
