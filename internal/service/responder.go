package service

import (
	"math/rand"
	"sort"
	"sync"

	"inmomax/internal/config"
	"inmomax/internal/model"
)

// replyTemplates holds the fixed reply pool per intent.
var replyTemplates = map[model.Intent][]string{
	model.IntentGreeting: {
		"¡Hola! Bienvenido a InmoMax. ¿En qué puedo ayudarte hoy?",
		"¡Hola! Soy el asistente virtual de InmoMax. ¿Cómo te puedo ayudar?",
		"¡Hola! ¿Estás buscando alguna propiedad en particular?",
	},
	model.IntentProperties: {
		"Tenemos una gran variedad de propiedades disponibles. ¿Buscas casa, departamento, local comercial o terreno?",
		"Contamos con propiedades en venta y alquiler en toda la zona de Rosario. ¿Qué tipo te interesa?",
		"Manejamos más de 500 propiedades activas. ¿Te interesa alguna zona en particular?",
	},
	model.IntentPrices: {
		"Los precios varían según la ubicación, tipo y características. ¿Te interesa alguna zona específica?",
		"Tenemos opciones para todos los presupuestos. ¿Podrías contarme qué rango de precio manejas?",
		"Los precios dependen de muchos factores. ¿Qué tipo de propiedad te interesa y en qué zona?",
	},
	model.IntentRent: {
		"Manejamos alquileres tradicionales y temporales. ¿Para cuánto tiempo necesitas la propiedad?",
		"Tenemos excelentes opciones en alquiler. ¿Buscas casa o departamento?",
		"Para alquileres trabajamos con garantía propietaria o seguro de caución. ¿Qué modalidad prefieres?",
	},
	model.IntentSale: {
		"¿Estás buscando comprar o vender una propiedad?",
		"Para ventas ofrecemos asesoramiento integral. ¿Ya tienes una propiedad en mente?",
		"Contamos con financiación y asesoramiento legal. ¿Qué tipo de propiedad te interesa comprar?",
	},
	model.IntentLocation: {
		"Trabajamos en Rosario y zona metropolitana: Las Lomas, Centro, Fisherton, Pichincha, Funes y más.",
		"Cubrimos toda la ciudad de Rosario y alrededores. ¿Hay algún barrio que te interese particularmente?",
		"Tenemos propiedades en las mejores zonas de Rosario. ¿Qué barrio prefieres?",
	},
	model.IntentContact: {
		"Puedes contactarnos al +54 341 123-4567 o por email a info@inmomax.com",
		"Nuestro teléfono es +54 341 123-4567 y también puedes escribirnos a info@inmomax.com",
		"Para contacto directo: +54 341 123-4567 o agenda una cita desde nuestra web",
	},
	model.IntentHours: {
		"Atendemos de lunes a viernes de 9:00 a 18:00 y sábados de 9:00 a 13:00",
		"Nuestros horarios son: L-V 9:00-18:00, Sábados 9:00-13:00, Domingos cerrado",
		"Estamos disponibles de lunes a viernes todo el día y sábados por la mañana",
	},
	model.IntentServices: {
		"Ofrecemos: compra-venta, alquileres, tasaciones, administración de propiedades y asesoramiento legal",
		"Nuestros servicios incluyen gestión integral inmobiliaria: ventas, alquileres, tasaciones y más",
		"Brindamos asesoramiento completo: desde la búsqueda hasta la escrituración",
	},
	model.IntentFinancing: {
		"Trabajamos con todos los bancos para créditos hipotecarios. ¿Necesitas info sobre financiación?",
		"Ofrecemos asesoramiento para créditos UVA, tradicionales y planes gubernamentales",
		"Podemos ayudarte con la gestión de créditos hipotecarios. ¿Ya pre-calificaste en algún banco?",
	},
	model.IntentAppraisal: {
		"Realizamos tasaciones oficiales para compra, venta, sucesiones y trámites bancarios",
		"Nuestras tasaciones están avaladas por el Colegio de Martilleros. ¿Para qué la necesitas?",
		"Hacemos tasaciones en 48-72 horas. El costo varía según el tipo de propiedad",
	},
	model.IntentFarewell: {
		"¡Gracias por contactarte con InmoMax! Espero haberte ayudado",
		"¡Hasta luego! No dudes en escribirme si necesitas más información",
		"¡Que tengas un excelente día! Aquí estaré si necesitas ayuda",
	},
	model.IntentDefault: {
		"Entiendo tu consulta. Para una atención más personalizada, te sugiero contactar a uno de nuestros agentes",
		"Para brindarte la mejor información, te recomiendo hablar directamente con nuestro equipo",
		"Tu consulta es muy específica. ¿Te parece si coordinas una llamada con uno de nuestros especialistas?",
	},
}

// followUpSuggestions holds the fixed suggestion list per intent. Intents
// without an entry fall back to the default list.
var followUpSuggestions = map[model.Intent][]string{
	model.IntentGreeting: {
		"¿Buscas alguna propiedad en particular?",
		"¿Te interesa comprar o alquilar?",
		"¿En qué zona estás buscando?",
	},
	model.IntentProperties: {
		"¿Qué tipo de propiedad te interesa?",
		"¿Tienes algún presupuesto en mente?",
		"¿Hay alguna zona que prefieras?",
	},
	model.IntentPrices: {
		"¿Qué tipo de propiedad te interesa?",
		"¿En qué zona estás buscando?",
		"¿Necesitas información sobre financiación?",
	},
	model.IntentRent: {
		"¿Para cuánto tiempo necesitas la propiedad?",
		"¿Qué zona prefieres?",
		"¿Tienes garantía propietaria?",
	},
	model.IntentSale: {
		"¿Ya tienes una propiedad en mente?",
		"¿Necesitas asesoramiento para financiación?",
		"¿Qué zona te interesa?",
	},
	model.IntentLocation: {
		"¿Qué tipo de propiedad buscas en esa zona?",
		"¿Para compra o alquiler?",
		"¿Tienes algún presupuesto definido?",
	},
	model.IntentContact: {
		"¿Quieres agendar una visita?",
		"¿Prefieres que te llamemos?",
		"¿Hay alguna propiedad específica que te interese?",
	},
	model.IntentDefault: {
		"¿Puedes contarme más detalles?",
		"¿Te interesa alguna zona en particular?",
		"¿Prefieres hablar con uno de nuestros agentes?",
	},
}

// apologyReply is used when response generation itself fails; chat
// availability wins over correctness on this path.
const apologyReply = "Disculpa, ha ocurrido un error. ¿Podrías reformular tu pregunta?"

var apologySuggestions = []string{
	"¿Puedes intentar de otra manera?",
	"¿Te ayudo con otra consulta?",
}

// Reply carries the generated text plus the scoring metadata for an intent.
type Reply struct {
	Text        string
	Confidence  float64
	Suggestions []string
}

// Responder picks reply templates and follow-up suggestions for classified
// intents, and tracks usage counters for the chat stats endpoint. The
// randomness source is injected so template selection is reproducible under
// test seeds.
type Responder struct {
	cfg config.ChatConfig

	mu        sync.Mutex
	rng       *rand.Rand
	processed int
	byIntent  map[model.Intent]int
}

// NewResponder creates a responder using the given randomness source.
func NewResponder(cfg config.ChatConfig, rng *rand.Rand) *Responder {
	return &Responder{
		cfg:      cfg,
		rng:      rng,
		byIntent: make(map[model.Intent]int),
	}
}

// Respond generates a reply for the classified intent. It never fails: any
// internal problem degrades to a low-confidence apology response.
func (r *Responder) Respond(intent model.Intent) Reply {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.processed++
	r.byIntent[intent]++

	templates, ok := replyTemplates[intent]
	if !ok {
		templates = replyTemplates[model.IntentDefault]
	}
	if len(templates) == 0 {
		return Reply{
			Text:        apologyReply,
			Confidence:  r.cfg.ErrorConfidence,
			Suggestions: append([]string(nil), apologySuggestions...),
		}
	}

	confidence := r.cfg.MatchConfidence
	if intent == model.IntentDefault {
		confidence = r.cfg.FallbackConfidence
	}

	suggestions, ok := followUpSuggestions[intent]
	if !ok {
		suggestions = followUpSuggestions[model.IntentDefault]
	}

	return Reply{
		Text:        templates[r.rng.Intn(len(templates))],
		Confidence:  confidence,
		Suggestions: append([]string(nil), suggestions...),
	}
}

// Stats reports how many messages were processed and which intents were
// detected most often, sorted by frequency.
func (r *Responder) Stats() *model.ChatStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	top := make([]model.IntentCount, 0, len(r.byIntent))
	for intent, count := range r.byIntent {
		top = append(top, model.IntentCount{Intent: intent, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Intent < top[j].Intent
	})

	return &model.ChatStats{
		MessagesProcessed: r.processed,
		TopIntents:        top,
	}
}
