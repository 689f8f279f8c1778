package service

import (
	"regexp"
	"strings"

	"inmomax/internal/model"
)

// intentRule pairs an intent with the patterns that trigger it.
type intentRule struct {
	intent   model.Intent
	patterns []*regexp.Regexp
}

// Classifier maps free text to an intent by testing pattern lists in a fixed
// priority order. The order is part of the contract: several words appear
// under more than one intent ("valor" under prices and appraisal), and the
// first matching category wins.
type Classifier struct {
	rules []intentRule
}

// NewClassifier creates a classifier with the built-in rule set.
func NewClassifier() *Classifier {
	return &Classifier{rules: buildRules()}
}

// Classify returns the first intent, in priority order, with any pattern
// matching the lowercased message, or IntentDefault when nothing matches.
// Classification is deterministic: the same text always yields the same
// intent.
func (c *Classifier) Classify(message string) model.Intent {
	text := strings.ToLower(message)

	for _, rule := range c.rules {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(text) {
				return rule.intent
			}
		}
	}

	return model.IntentDefault
}

// compile turns pattern literals into a regexp slice. Patterns carry both
// accented and unaccented variants of Spanish words so users typing without
// accents still match.
func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

func buildRules() []intentRule {
	return []intentRule{
		{
			intent: model.IntentGreeting,
			patterns: compile(
				`hola`, `buenos? d[ií]as?`, `buenas? tardes?`, `buenas? noches?`,
				`saludos`, `qu[eé] tal`, `c[oó]mo est[aá]s?`,
			),
		},
		{
			intent: model.IntentProperties,
			patterns: compile(
				`propiedades?`, `inmuebles?`, `casas?`, `departamentos?`,
				`locales?`, `terrenos?`, `quintas?`, `qu[eé] tienen`,
				`opciones`, `disponibles?`, `cat[aá]logo`,
			),
		},
		{
			intent: model.IntentPrices,
			patterns: compile(
				`precios?`, `costo`, `valor`, `cu[aá]nto`,
				`barato`, `caro`, `econ[oó]mico`, `accesible`,
			),
		},
		{
			intent: model.IntentRent,
			patterns: compile(
				`alquiler`, `alquilar`, `rentar`, `arrendar`,
				`temporal`, `inquilino`,
			),
		},
		{
			intent: model.IntentSale,
			patterns: compile(
				`venta`, `vender`, `comprar`, `compra`,
				`adquirir`, `escriturar`,
			),
		},
		{
			intent: model.IntentLocation,
			patterns: compile(
				`ubicaci[oó]n`, `zona`, `barrio`, `d[oó]nde`,
				`lugar`, `[aá]rea`, `sector`, `rosario`,
				`centro`, `las lomas`, `fisherton`, `pichincha`, `funes`,
			),
		},
		{
			intent: model.IntentContact,
			patterns: compile(
				`contacto`, `tel[eé]fono`, `llamar`, `comunicar`,
				`email`, `mail`, `direcci[oó]n`, `whatsapp`,
			),
		},
		{
			intent: model.IntentHours,
			patterns: compile(
				`horarios?`, `atienden`, `abren`, `cierran`,
				`cu[aá]ndo`, `d[ií]as?`, `s[aá]bados?`, `domingos?`,
			),
		},
		{
			intent: model.IntentServices,
			patterns: compile(
				`servicios?`, `qu[eé] hacen`, `qu[eé] ofrecen`,
				`administraci[oó]n`, `gesti[oó]n`,
			),
		},
		{
			intent: model.IntentFinancing,
			patterns: compile(
				`financiaci[oó]n`, `cr[eé]dito`, `hipoteca`, `banco`,
				`cuotas`, `financiar`, `uva`, `pr[eé]stamo`,
			),
		},
		{
			intent: model.IntentAppraisal,
			patterns: compile(
				// "valor" also lives under prices, which is checked first;
				// kept here to preserve the original rule set.
				`tasaci[oó]n`, `tasar`, `avaluar`, `valor`,
				`cu[aá]nto vale`, `tasador`,
			),
		},
		{
			intent: model.IntentFarewell,
			patterns: compile(
				`gracias`, `chau`, `adi[oó]s`, `hasta luego`,
				`nos vemos`, `bye`, `hasta pronto`,
			),
		},
	}
}
