package e2e

import (
	"github.com/cucumber/godog"

	"fastdrc/e2e/steps/common"
	"fastdrc/e2e/steps/zaakdocumenten"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Generic requests and assertions
	common.RegisterSteps(ctx, tc)

	// geefLijstZaakdocumenten vragen
	zaakdocumenten.RegisterSteps(ctx, tc)
}
