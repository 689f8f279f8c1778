package store

import (
	"time"

	"inmomax/internal/model"
)

// SeedAgent returns the shared agent record for this deployment.
func SeedAgent() model.Agent {
	avatar := "/images/agente1.jpg"
	return model.Agent{
		ID:     1,
		Name:   "María González",
		Email:  "maria@inmomax.com",
		Phone:  "+54 341 123-4567",
		Avatar: &avatar,
	}
}

// SeedProperties returns the initial portfolio. Publication dates are
// staggered one day apart, newest first, so the default "recent" ordering of
// the seed matches id order.
func SeedProperties(now time.Time) []model.Property {
	agent := SeedAgent()

	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }
	intPtr := func(i int) *int { return &i }
	published := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	return []model.Property{
		{
			ID:          1,
			Title:       "Casa moderna en Las Lomas",
			Description: "Hermosa casa moderna ubicada en el prestigioso barrio de Las Lomas. La propiedad cuenta con amplios espacios, excelente luminosidad y un diseño contemporáneo que combina funcionalidad y estética. El jardín ofrece un espacio ideal para el disfrute familiar.",
			Price:       350000,
			Location:    "Las Lomas, Rosario",
			Address:     strPtr("Av. Las Lomas 1234"),
			Type:        model.TypeHouse,
			Operation:   model.OperationSale,
			Rooms:       3,
			Bathrooms:   2,
			Area:        120,
			LotArea:     floatPtr(200),
			Age:         intPtr(5),
			Features: []string{
				"Cocina integrada con mesada de granito",
				"Living comedor con ventanal al jardín",
				"Suite principal con vestidor",
				"Parrilla cubierta",
				"Cochera para 2 autos",
				"Sistema de alarma",
				"Portón automatizado",
				"Piscina climatizada",
			},
			Services: []string{"Gas natural", "Agua corriente", "Cloacas", "Electricidad", "Internet fibra óptica", "Cable"},
			Images: []string{
				"/images/casa1-1.jpg", "/images/casa1-2.jpg",
				"/images/casa1-3.jpg", "/images/casa1-4.jpg",
			},
			Coordinates: &model.Coordinates{Lat: -32.9442, Lng: -60.6505},
			Status:      model.StatusAvailable,
			Featured:    true,
			PublishedAt: published(0),
			Agent:       agent,
			Views:       145,
		},
		{
			ID:          2,
			Title:       "Departamento céntrico con balcón",
			Description: "Excelente departamento de 2 ambientes en pleno centro de Rosario. Ubicado en un edificio con portero las 24 horas, cuenta con todas las comodidades para una vida urbana plena. A pasos de comercios, bancos y transporte público.",
			Price:       180000,
			Location:    "Centro, Rosario",
			Address:     strPtr("San Martín 856, Piso 4°"),
			Type:        model.TypeApartment,
			Operation:   model.OperationSale,
			Rooms:       2,
			Bathrooms:   1,
			Area:        65,
			Age:         intPtr(15),
			MaintenanceFee: floatPtr(12000),
			Features: []string{
				"Balcón con vista a la ciudad",
				"Cocina separada",
				"Dormitorio principal con placard",
				"Baño completo con ducha",
				"Living comedor integrado",
				"Portero 24 horas",
			},
			Services: []string{"Gas natural", "Agua corriente", "Cloacas", "Electricidad", "Internet", "Cable"},
			Images: []string{
				"/images/depto1-1.jpg", "/images/depto1-2.jpg", "/images/depto1-3.jpg",
			},
			Coordinates: &model.Coordinates{Lat: -32.9520, Lng: -60.6385},
			Status:      model.StatusAvailable,
			Featured:    true,
			PublishedAt: published(1),
			Agent:       agent,
			Views:       89,
		},
		{
			ID:          3,
			Title:       "Casa en Fisherton con jardín",
			Description: "Acogedora casa familiar en el tranquilo barrio de Fisherton. Perfecta para familias que buscan tranquilidad sin alejarse de la ciudad. Cuenta con amplio jardín, ideal para niños y mascotas.",
			Price:       45000,
			Location:    "Fisherton, Rosario",
			Address:     strPtr("Los Álamos 789"),
			Type:        model.TypeHouse,
			Operation:   model.OperationRent,
			Rooms:       3,
			Bathrooms:   2,
			Area:        110,
			LotArea:     floatPtr(180),
			Age:         intPtr(20),
			Features: []string{
				"Jardín delantero y trasero",
				"Cochera cubierta",
				"Parrilla",
				"Lavadero independiente",
				"3 dormitorios con placards",
				"Baño principal y toilette",
			},
			Services: []string{"Gas natural", "Agua corriente", "Cloacas", "Electricidad"},
			Images:   []string{"/images/casa2-1.jpg", "/images/casa2-2.jpg"},
			Coordinates: &model.Coordinates{Lat: -32.9380, Lng: -60.6650},
			Status:      model.StatusAvailable,
			Featured:    false,
			PublishedAt: published(2),
			Agent:       agent,
			Views:       67,
		},
		{
			ID:          4,
			Title:       "Local comercial sobre avenida",
			Description: "Excelente local comercial ubicado sobre avenida Pellegrini, una de las arterias más importantes de Rosario. Ideal para cualquier tipo de comercio con alta visibilidad y flujo peatonal constante.",
			Price:       280000,
			Location:    "Pellegrini, Rosario",
			Address:     strPtr("Av. Pellegrini 2456"),
			Type:        model.TypeCommercial,
			Operation:   model.OperationSale,
			Rooms:       0,
			Bathrooms:   1,
			Area:        80,
			Age:         intPtr(10),
			MaintenanceFee: floatPtr(8000),
			Features: []string{
				"Frente sobre avenida principal",
				"Vidriera de 4 metros",
				"Depósito en subsuelo",
				"Baño para empleados",
				"Instalación eléctrica trifásica",
				"Aire acondicionado",
			},
			Services: []string{"Gas natural", "Agua corriente", "Cloacas", "Electricidad", "Internet"},
			Images:   []string{"/images/local1-1.jpg", "/images/local1-2.jpg"},
			Coordinates: &model.Coordinates{Lat: -32.9510, Lng: -60.6420},
			Status:      model.StatusAvailable,
			Featured:    true,
			PublishedAt: published(3),
			Agent:       agent,
			Views:       203,
		},
		{
			ID:          5,
			Title:       "Departamento nuevo en Pichincha",
			Description: "Monoambiente a estrenar en el barrio Pichincha. Ideal para estudiantes o profesionales jóvenes. Edificio con todas las comodidades modernas y excelente conectividad con el centro.",
			Price:       32000,
			Location:    "Pichincha, Rosario",
			Address:     strPtr("Tucumán 1567, Piso 2°"),
			Type:        model.TypeApartment,
			Operation:   model.OperationRent,
			Rooms:       1,
			Bathrooms:   1,
			Area:        45,
			Age:         intPtr(0),
			MaintenanceFee: floatPtr(8500),
			Features: []string{
				"A estrenar",
				"Cocina integrada",
				"Baño completo",
				"Balcón",
				"Placard empotrado",
				"Ventanas DVH",
			},
			Services: []string{"Gas natural", "Agua corriente", "Cloacas", "Electricidad", "Internet fibra óptica"},
			Images:   []string{"/images/depto2-1.jpg", "/images/depto2-2.jpg"},
			Coordinates: &model.Coordinates{Lat: -32.9480, Lng: -60.6450},
			Status:      model.StatusAvailable,
			Featured:    false,
			PublishedAt: published(4),
			Agent:       agent,
			Views:       34,
		},
		{
			ID:          6,
			Title:       "Casa quinta en Funes",
			Description: "Espectacular casa quinta ubicada en Funes, ideal para quienes buscan tranquilidad y contacto con la naturaleza sin alejarse demasiado de la ciudad. Amplio parque con piscina y quincho para disfrutar en familia.",
			Price:       420000,
			Location:    "Funes, Santa Fe",
			Address:     strPtr("Los Robles 345"),
			Type:        model.TypeHouse,
			Operation:   model.OperationSale,
			Rooms:       4,
			Bathrooms:   3,
			Area:        180,
			LotArea:     floatPtr(800),
			Age:         intPtr(8),
			Features: []string{
				"Piscina climatizada",
				"Quincho con parrilla",
				"Cancha de tenis",
				"Casa de huéspedes",
				"Cochera para 3 autos",
				"Sistema de riego automático",
				"Alarma perimetral",
				"Parque con árboles frutales",
			},
			Services: []string{"Agua corriente", "Electricidad", "Gas envasado", "Internet satelital", "Cloacas"},
			Images: []string{
				"/images/quinta1-1.jpg", "/images/quinta1-2.jpg",
				"/images/quinta1-3.jpg", "/images/quinta1-4.jpg",
			},
			Coordinates: &model.Coordinates{Lat: -32.9150, Lng: -60.8200},
			Status:      model.StatusAvailable,
			Featured:    true,
			PublishedAt: published(5),
			Agent:       agent,
			Views:       178,
		},
	}
}
