package catalog

import "sensei/internal/types"

var standardBoda = [4]types.Range{
	types.NewRange(150, 250),
	types.NewRange(300, 400),
	types.NewRange(500, 600),
	types.NewRange(700, 800),
}

// builtinRoads lists the arterial roads in resolution order.
func builtinRoads() []RoadSegment {
	return []RoadSegment{
		{
			Key:        "mombasa_road",
			Name:       "Mombasa Road",
			Direction:  "Southeast",
			CoverageKm: 25,
			Bands: []DistanceBand{
				{FromKm: 0, ToKm: 5, Estates: []string{"Industrial Area", "South B", "South C", "Imara Daima"}, Boda: standardBoda[0]},
				{FromKm: 5, ToKm: 10, Estates: []string{"Mlolongo Gateway", "Syokimau", "Kitengela Gate"}, Boda: standardBoda[1]},
				{FromKm: 10, ToKm: 15, Estates: []string{"Athi River (near)", "Mlolongo Town"}, Boda: standardBoda[2]},
				{FromKm: 15, ToKm: 25, Estates: []string{"Kitengela", "Kajiado (outer limit)"}, Boda: standardBoda[3]},
			},
			Traffic: TrafficMultiplier{Peak: 1.5, Normal: 1.0},
			Notes:   "Heavy truck traffic. Peak hours extremely congested.",
		},
		{
			Key:        "waiyaki_way",
			Name:       "Waiyaki Way",
			Direction:  "Northwest",
			CoverageKm: 25,
			Bands: []DistanceBand{
				{FromKm: 0, ToKm: 5, Estates: []string{"Westlands", "Parklands", "Mountain View", "Spring Valley"}, Boda: standardBoda[0]},
				{FromKm: 5, ToKm: 10, Estates: []string{"Kangemi", "Regen", "Uthiru"}, Boda: standardBoda[1]},
				{FromKm: 10, ToKm: 15, Estates: []string{"Kinoo", "Kikuyu"}, Boda: standardBoda[2]},
				{FromKm: 15, ToKm: 25, Estates: []string{"Limuru Road (outer limit)"}, Boda: standardBoda[3]},
			},
			Traffic: TrafficMultiplier{Peak: 1.6, Normal: 1.0},
			Notes:   "Notorious for traffic jams. Add 30-60 mins during peak hours.",
		},
		{
			Key:        "ngong_road",
			Name:       "Ngong Road",
			Direction:  "Southwest",
			CoverageKm: 25,
			Bands: []DistanceBand{
				{FromKm: 0, ToKm: 5, Estates: []string{"Kilimani", "Hurlingham", "Kileleshwa", "Lavington"}, Boda: standardBoda[0]},
				{FromKm: 5, ToKm: 10, Estates: []string{"Karen", "Runda", "Adams Arcade", "Junction"}, Boda: standardBoda[1]},
				{FromKm: 10, ToKm: 15, Estates: []string{"Ngong Town", "Kibiko"}, Boda: standardBoda[2]},
				{FromKm: 15, ToKm: 25, Estates: []string{"Rongai", "Kiserian (outer limit)"}, Boda: standardBoda[3]},
			},
			Traffic: TrafficMultiplier{Peak: 1.4, Normal: 1.0},
			Notes:   "Good road condition. Premium areas along this route.",
		},
		{
			Key:        "thika_road",
			Name:       "Thika Road",
			Direction:  "Northeast",
			CoverageKm: 25,
			Bands: []DistanceBand{
				{FromKm: 0, ToKm: 5, Estates: []string{"Muthaiga", "Parklands", "Eastleigh", "Pangani"}, Boda: standardBoda[0]},
				{FromKm: 5, ToKm: 10, Estates: []string{"Kasarani", "Githurai 44", "Zimmerman"}, Boda: standardBoda[1]},
				{FromKm: 10, ToKm: 15, Estates: []string{"Githurai 45", "Kahawa West", "Kahawa Sukari"}, Boda: standardBoda[2]},
				{FromKm: 15, ToKm: 25, Estates: []string{"Ruiru", "Juja (outer limit)"}, Boda: standardBoda[3]},
			},
			Traffic: TrafficMultiplier{Peak: 1.3, Normal: 1.0},
			Notes:   "Superhighway but still congested at exits. Matatu traffic.",
		},
		{
			Key:        "jogoo_road",
			Name:       "Jogoo Road",
			Direction:  "East",
			CoverageKm: 25,
			Bands: []DistanceBand{
				{FromKm: 0, ToKm: 5, Estates: []string{"Makadara", "Kaloleni", "Shauri Moyo"}, Boda: types.NewRange(150, 200)},
				{FromKm: 5, ToKm: 10, Estates: []string{"Buruburu", "Umoja", "Donholm"}, Boda: types.NewRange(250, 350)},
				{FromKm: 10, ToKm: 15, Estates: []string{"Komarock", "Kayole", "Mihang'o"}, Boda: types.NewRange(400, 500)},
				{FromKm: 15, ToKm: 25, Estates: []string{"Ruai", "Kamulu (outer limit)"}, Boda: types.NewRange(600, 700)},
			},
			Traffic: TrafficMultiplier{Peak: 1.3, Normal: 1.0},
			Notes:   "Budget-friendly areas. Lower boda costs due to competition.",
		},
		{
			Key:        "langata_road",
			Name:       "Langata Road",
			Direction:  "South",
			CoverageKm: 25,
			Bands: []DistanceBand{
				{FromKm: 0, ToKm: 5, Estates: []string{"Kilimani", "Nairobi West", "Lang'ata"}, Boda: standardBoda[0]},
				{FromKm: 5, ToKm: 10, Estates: []string{"Karen", "Ongata Rongai"}, Boda: standardBoda[1]},
				{FromKm: 10, ToKm: 15, Estates: []string{"Tuala", "Kiserian"}, Boda: standardBoda[2]},
				{FromKm: 15, ToKm: 25, Estates: []string{"Ngong (outer limit)"}, Boda: standardBoda[3]},
			},
			Traffic: TrafficMultiplier{Peak: 1.3, Normal: 1.0},
			Notes:   "Mix of premium (Karen) and budget (Rongai) areas.",
		},
		{
			Key:        "outer_ring_road",
			Name:       "Outer Ring Road",
			Direction:  "Circular",
			CoverageKm: 15,
			Bands: []DistanceBand{
				{FromKm: 0, ToKm: 5, Estates: []string{"Enterprise Road", "Mombasa Road Junction", "Embakasi"}, Boda: standardBoda[0]},
				{FromKm: 5, ToKm: 10, Estates: []string{"Fedha", "Pipeline", "Donholm"}, Boda: standardBoda[1]},
				{FromKm: 10, ToKm: 15, Estates: []string{"Utawala", "Mihang'o", "Ruai Gate"}, Boda: standardBoda[2]},
			},
			Traffic: TrafficMultiplier{Peak: 1.4, Normal: 1.0},
			Notes:   "Connects major roads. Good for cross-town navigation.",
		},
		{
			Key:        "eastern_bypass",
			Name:       "Eastern Bypass",
			Direction:  "North-South (Eastern side)",
			CoverageKm: 20,
			Bands: []DistanceBand{
				{FromKm: 0, ToKm: 5, Estates: []string{"Embakasi", "Donholm", "Buruburu"}, Boda: types.NewRange(150, 250)},
				{FromKm: 5, ToKm: 10, Estates: []string{"Ruai", "Utawala", "Pipeline"}, Boda: types.NewRange(300, 400)},
				{FromKm: 10, ToKm: 20, Estates: []string{"Kamulu", "Joska (outer limit)"}, Boda: types.NewRange(500, 700)},
			},
			Traffic: TrafficMultiplier{Peak: 1.2, Normal: 1.0},
			Notes:   "Relatively clear traffic. Good alternative to Thika/Mombasa Roads.",
		},
	}
}

func builtinZones() []Zone {
	return []Zone{
		{Name: "premium", Multiplier: 1.2, Areas: []string{
			"Karen", "Westlands", "Runda", "Lavington", "Kileleshwa", "Muthaiga", "Spring Valley",
		}},
		{Name: "middle", Multiplier: 1.0, Areas: []string{
			"South C", "South B", "Kilimani", "Parklands", "Langata", "Ngong Road", "Donholm", "Embakasi", "Kasarani",
		}},
		{Name: "budget", Multiplier: 0.85, Areas: []string{
			"Kibera", "Eastlands", "Githurai", "Kayole", "Kawangware", "Mathare", "Umoja", "Dandora",
		}},
	}
}

func builtinCarCategories() []CarCategory {
	return []CarCategory{
		{Name: "standard", Multiplier: 1.0, Makes: []string{
			"Toyota", "Nissan", "Honda", "Mazda", "Mitsubishi", "Suzuki", "Isuzu", "Daihatsu", "Datsun",
			"Chevrolet (Opel)", "Ford (Ranger, Everest)", "Hyundai", "Kia", "Peugeot", "Renault", "Mahindra", "Tata",
		}},
		{Name: "premium", Multiplier: 1.4, Makes: []string{
			"Volkswagen", "Audi", "Subaru", "Volvo", "Jeep", "Land Rover (Defender, Discovery Sport)",
			"Lexus (RX, NX)", "Infiniti", "Acura", "Mini Cooper", "Alfa Romeo", "Saab",
		}},
		{Name: "luxury", Multiplier: 1.8, Makes: []string{
			"BMW", "Mercedes-Benz", "Range Rover", "Porsche", "Jaguar", "Aston Martin", "Bentley", "Rolls-Royce",
			"Maserati", "Ferrari", "Lamborghini", "McLaren", "Maybach", "Lexus (LS, LX)", "Tesla", "Cadillac",
		}},
		{
			Name:       "exotic",
			Multiplier: 2.5,
			Makes:      []string{"Bugatti", "Koenigsegg", "Pagani"},
			Note:       "Extremely rare, requires specialized importation for parts",
		},
	}
}

func builtinServices() []ServiceEntry {
	return []ServiceEntry{
		EntryFor(ServiceBatteryReplacement, StandardPricing{
			Labor:    types.NewRange(1000, 4000),
			Parts:    types.NewRange(6500, 28000),
			TimeMins: types.NewRange(20, 60),
			Notes:    "Labor varies based on accessibility and connections",
		}),
		EntryFor(ServiceOilChange, StandardPricing{
			Labor:    types.NewRange(2000, 8000),
			Parts:    types.NewRange(2000, 25000),
			TimeMins: types.NewRange(45, 240),
			Notes:    "Full service with worn parts replacement costs more",
		}),
		EntryFor(ServiceBrakePads, StandardPricing{
			Labor:    types.NewRange(2500, 18000),
			Parts:    types.NewRange(4000, 20000),
			TimeMins: types.NewRange(60, 180),
			Notes:    "Premium cars need higher labor cost",
		}),
		EntryFor(ServiceDiagnosticScan, StandardPricing{
			Labor:    types.NewRange(1500, 15000),
			Parts:    types.NewRange(0, 0),
			TimeMins: types.NewRange(30, 180),
			Notes:    "Complex diagnostics (transmission, engine) cost more",
		}),
		EntryFor(ServiceAlternator, StandardPricing{
			Labor:    types.NewRange(4000, 8000),
			Parts:    types.NewRange(8000, 15000),
			TimeMins: types.NewRange(120, 180),
		}),
		EntryFor(ServiceStarterMotor, StandardPricing{
			Labor:    types.NewRange(3500, 7000),
			Parts:    types.NewRange(6000, 12000),
			TimeMins: types.NewRange(90, 150),
		}),
		EntryFor(ServiceRadiator, StandardPricing{
			Labor:    types.NewRange(5000, 10000),
			Parts:    types.NewRange(8000, 20000),
			TimeMins: types.NewRange(180, 300),
		}),
		EntryFor(ServiceMobileCallout, FlatPlusDistancePricing{
			FlatFee: 500,
			Boda:    types.NewRange(150, 800),
			Notes:   "Flat 500 service fee + boda charge (150 Westlands, 800 Kahawa) + labor + parts",
		}),
		EntryFor(ServicePickAndDrop, RoundTripPricing{
			ServiceFee: 500,
			PickupBoda: types.NewRange(200, 800),
			ReturnBoda: types.NewRange(200, 800),
			Notes:      "Boda both ways + 500 service fee. If garage sends driver, cheaper",
		}),
		EntryFor(ServiceTowing, FixedRangePricing{
			Range: types.NewRange(2500, 25000),
			Notes: "Distance-dependent. Could be more for long distances",
		}),
		EntryFor(ServiceTransmission, DiagnosisRequiredPricing{Notes: "Too complex to estimate without inspection"}),
		EntryFor(ServiceEngineOverhaul, DiagnosisRequiredPricing{Notes: "Major work requiring full diagnosis and quote"}),
		EntryFor(ServiceSpecialty, DiagnosisRequiredPricing{Notes: "Garage/specialist services need assessment first"}),
	}
}

func builtinProfiles() []ServiceProfile {
	return []ServiceProfile{
		{
			Service:      MobileMechanic,
			Name:         "Mobile Mechanic",
			Description:  "Mechanic comes to your location for on-site repairs",
			BestFor:      []string{"emergencies", "minor_repairs", "diagnostics", "convenience"},
			ResponseTime: "30-60 minutes",
			Commission:   "18%",
		},
		{
			Service:      PickAndDrop,
			Name:         "Pick & Drop",
			Description:  "We collect your car, repair at garage, return when ready",
			BestFor:      []string{"major_repairs", "busy_schedules", "workshop_equipment_needed"},
			ResponseTime: "Same day pickup",
			Commission:   "15%",
		},
		{
			Service:      CarSpecific,
			Name:         "Car-Specific Specialist",
			Description:  "Brand specialists (BMW, Toyota, Mercedes, etc.)",
			BestFor:      []string{"complex_repairs", "premium_cars", "specialized_diagnostics"},
			ResponseTime: "2-4 hours",
			Commission:   "20%",
		},
	}
}

func builtinCoverage() CoveragePolicy {
	return CoveragePolicy{
		MaxDistanceKm:       25,
		MobileMechanicMaxKm: 20,
		PickAndDropMaxKm:    25,
		BeyondCoverage:      "Recommend towing to nearest partner garage within coverage",
		EmergencyOverride:   "Night emergencies may extend to 30km with premium pricing",
	}
}

// Builtin returns a fresh copy of the authored catalog tables.
func Builtin() Source {
	return Source{
		Templates:     builtinTemplates(),
		Roads:         builtinRoads(),
		Zones:         builtinZones(),
		CarCategories: builtinCarCategories(),
		Services:      builtinServices(),
		Profiles:      builtinProfiles(),
		Coverage:      builtinCoverage(),
	}
}
