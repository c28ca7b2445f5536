package catalog

import "github.com/pbaille/dashalert/internal/domain"

func cost(v float64) *float64 {
	return &v
}

var dashboardSigns = []domain.Category{
	{
		Name:    "Check Engine Light",
		IconRef: "EngineCheck",
		Entries: []domain.Entry{
			{
				Name:            "Engine Misfire Warning",
				Description:     "Indicates that one or more cylinders in the engine are misfiring, which can affect engine performance and fuel economy.",
				Remedy:          "Check spark plugs, ignition coils, and fuel injectors; may require replacing faulty components.",
				IsComplexRepair: true,
				ContinueDriving: "No, do not continue driving. Misfires can cause further damage to the engine.",
				AverageCost:     cost(400),
			},
			{
				Name:            "Issue with the engine or emissions system",
				Description:     "Indicates an issue with the engine or emissions system. Common causes include loose gas cap, faulty oxygen sensor, or catalytic converter issues.",
				Remedy:          "First, check if the gas cap is loose and tighten it. If the light persists after driving for a while, professional diagnosis is needed.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but only to a nearby repair shop. Avoid long trips.",
				AverageCost:     cost(350),
			},
			{
				Name:            "ECU Failure",
				Description:     "Indicates a malfunction in the Engine Control Unit (ECU), which can affect engine performance and drivability.",
				Remedy:          "Diagnose with an OBD-II scanner; may require reprogramming or replacing the ECU.",
				IsComplexRepair: true,
				ContinueDriving: "No, do not continue driving. ECU failure can cause unpredictable behavior.",
				AverageCost:     cost(800),
			},
		},
	},
	{
		Name:    "Low Oil Pressure",
		IconRef: "LowOilPressure",
		Entries: []domain.Entry{
			{
				Name:            "Low Oil Pressure",
				Description:     "Indicates dangerous low oil pressure which can cause severe engine damage.",
				Remedy:          "Immediately pull over safely and turn off the engine. Check oil level when engine is cool.",
				IsComplexRepair: false,
				ContinueDriving: "No, do not continue driving. Low oil pressure can cause engine failure.",
			},
		},
	},
	{
		Name:    "Battery Warning",
		IconRef: "BatteryWarning",
		Entries: []domain.Entry{
			{
				Name:            "Battery Warning",
				Description:     "Indicates charging system problem or failing battery.",
				Remedy:          "Check battery terminals for corrosion and ensure they're tight. If persists, battery or alternator may need replacement.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but only to a nearby repair shop. Avoid long trips.",
				AverageCost:     cost(600),
			},
		},
	},
	{
		Name:    "Coolant Temperature Warning",
		IconRef: "CoolantTemperatureWarning",
		Entries: []domain.Entry{
			{
				Name:            "Coolant Temperature Warning",
				Description:     "Warns of an overheating engine due to low coolant or a failing cooling system.",
				Remedy:          "Refill coolant, check for leaks, and inspect radiator, water pump, and thermostat.",
				IsComplexRepair: true,
				ContinueDriving: "No, do not continue driving. Overheating can cause engine damage.",
				AverageCost:     cost(500),
			},
		},
	},
	{
		Name:    "Brake System Warning Light",
		IconRef: "BrakeSystemWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "Brake System Warning Light",
				Description:     "Indicates low brake fluid or an issue with the braking system.",
				Remedy:          "Check brake fluid levels and brake pads; may require bleeding the brake system or replacing components.",
				IsComplexRepair: true,
				ContinueDriving: "No, do not continue driving. Brake failure can cause accidents.",
				AverageCost:     cost(300),
			},
		},
	},
	{
		Name:    "ABS Warning Light",
		IconRef: "ABSWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "ABS Warning Light",
				Description:     "Indicates a problem with the Anti-lock Braking System (ABS).",
				Remedy:          "Diagnose with a scanner; repair may involve replacing ABS sensors or the control module.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but exercise caution. ABS failure can affect braking performance.",
				AverageCost:     cost(400),
			},
		},
	},
	{
		Name:    "Tire Pressure Warning Light (TPMS)",
		IconRef: "TirePressureWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "Tire Pressure Warning Light (TPMS)",
				Description:     "Signals low tire pressure in one or more tires.",
				Remedy:          "Check and inflate tires to the recommended pressure; replace faulty TPMS sensors if needed.",
				IsComplexRepair: false,
				ContinueDriving: "Yes, but check tire pressure as soon as possible.",
				AverageCost:     cost(50),
			},
		},
	},
	{
		Name:    "Airbag Warning Light",
		IconRef: "AirbagWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "Airbag Warning Light",
				Description:     "Indicates a fault in the airbag system, which may prevent deployment in an accident.",
				Remedy:          "Diagnose with a scanner; may require replacing airbag sensors or control module.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but get serviced as soon as possible. Airbags may not deploy in an accident.",
				AverageCost:     cost(400),
			},
		},
	},
	{
		Name:    "Power Steering Warning Light",
		IconRef: "PowerSteeringWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "Power Steering Warning Light",
				Description:     "Indicates a failure in the power steering system, making steering harder.",
				Remedy:          "Check power steering fluid levels and inspect the system for leaks or electronic faults.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but exercise caution. Power steering failure can affect steering performance.",
				AverageCost:     cost(650),
			},
		},
	},
	{
		Name:    "Transmission Temperature Warning Light",
		IconRef: "TransmissionTemperatureWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "Transmission Temperature Warning Light",
				Description:     "Indicates that the transmission is overheating.",
				Remedy:          "Check transmission fluid level and condition; may require replacing the fluid or repairing the cooling system.",
				IsComplexRepair: true,
				ContinueDriving: "No, do not continue driving. Transmission overheating can cause damage.",
				AverageCost:     cost(400),
			},
		},
	},
	{
		Name:    "Fuel Cap Warning Light",
		IconRef: "FuelCapWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "Fuel Cap Warning Light",
				Description:     "Indicates a loose or missing fuel cap, which can affect emissions.",
				Remedy:          "Tighten or replace the fuel cap.",
				IsComplexRepair: false,
				ContinueDriving: "Yes, but check the fuel cap as soon as possible.",
				AverageCost:     cost(20),
			},
		},
	},
	{
		Name:    "Glow Plug Indicator (Diesel Vehicles)",
		IconRef: "GlowPlugIndicator",
		Entries: []domain.Entry{
			{
				Name:            "Glow Plug Indicator (Diesel Vehicles)",
				Description:     "Indicates an issue with the glow plugs or preheating system.",
				Remedy:          "Check and replace faulty glow plugs.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but only to a nearby repair shop. Avoid long trips.",
				AverageCost:     cost(250),
			},
		},
	},
	{
		Name:    "Traction Control Warning Light",
		IconRef: "TractionControlWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "Traction Control Warning Light",
				Description:     "Indicates an issue with the traction control system.",
				Remedy:          "Check wheel speed sensors and ABS module; may require resetting or replacing sensors.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but exercise caution. Traction control failure can affect vehicle stability.",
				AverageCost:     cost(300),
			},
		},
	},
	{
		Name:    "Engine Temperature Warning Light",
		IconRef: "EngineTemperatureWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "Engine Temperature Warning Light",
				Description:     "Signals an overheating engine.",
				Remedy:          "Turn off the engine, let it cool, and check coolant levels; inspect the radiator and thermostat.",
				IsComplexRepair: true,
				ContinueDriving: "No, do not continue driving. Overheating can cause engine damage.",
				AverageCost:     cost(350),
			},
		},
	},
	{
		Name:    "Seat Belt Sensor Error",
		IconRef: "SeatBeltSensorError",
		Entries: []domain.Entry{
			{
				Name:            "Seat Belt Sensor Error",
				Description:     "Indicates a malfunctioning seat belt sensor, which may prevent proper detection of a fastened seatbelt.",
				Remedy:          "Check the seat belt sensor wiring and connections; replace the sensor if faulty.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, safe to drive. Get serviced soon to prevent potential starting issues. Seat belt failure can cause injury.",
				AverageCost:     cost(150),
			},
		},
	},
	{
		Name:    "DPF Warning Light",
		IconRef: "DPFWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "DPF Warning Light",
				Description:     "Indicates a blockage in the Diesel Particulate Filter (DPF), which can lead to reduced engine performance.",
				Remedy:          "Perform a forced regeneration or replace the DPF if clogged.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but only to a nearby repair shop. Avoid long trips.",
				AverageCost:     cost(1000),
			},
		},
	},
	{
		Name:    "Exhaust System Warning",
		IconRef: "ExhaustSystemWarning",
		Entries: []domain.Entry{
			{
				Name:            "Exhaust System Warning",
				Description:     "This failure is usually represented by the 'Check Engine Light' or 'Exhaust System Light'. It indicates an issue with the exhaust system, such as a catalytic converter failure or an exhaust leak.",
				Remedy:          "Inspect the exhaust system and replace damaged parts as needed.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but only to a nearby repair shop. Avoid long trips.",
				AverageCost:     cost(600),
			},
		},
	},
	{
		Name:    "Powertrain Malfunction Light",
		IconRef: "PowertrainMalfunctionLight",
		Entries: []domain.Entry{
			{
				Name:            "Powertrain Malfunction Light",
				Description:     "This failure is usually represented by the 'Powertrain Malfunction Light'. It indicates a fault in the transmission, drivetrain, or related components.",
				Remedy:          "Diagnose with a scanner; repairs may involve transmission fluid changes, sensor replacements, or full transmission repair.",
				IsComplexRepair: true,
				ContinueDriving: "No, do not continue driving. Powertrain failure can cause unpredictable behavior.",
				AverageCost:     cost(1000),
			},
		},
	},
	{
		Name:    "Differential Warning Light",
		IconRef: "DifferentialWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "Differential Warning Light",
				Description:     "This failure is usually represented by the 'Differential Warning Light'. It indicates an issue with the differential, which can affect vehicle handling and power distribution.",
				Remedy:          "Inspect the differential for fluid leaks or gear damage; may require fluid replacement or full differential repair.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but only to a nearby repair shop. Avoid long trips.",
				AverageCost:     cost(800),
			},
		},
	},
	{
		Name:    "Start/Stop System Failure",
		IconRef: "StartStopSystemFailure",
		Entries: []domain.Entry{
			{
				Name:            "Start/Stop System Failure",
				Description:     "This failure is usually represented by the 'Auto Start/Stop Warning Light'. It indicates a malfunction in the automatic start/stop system, which can affect fuel efficiency.",
				Remedy:          "Check the battery, alternator, and system sensors; may require a system reset or component replacement.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but only to a nearby repair shop. Avoid long trips.",
				AverageCost:     cost(250),
			},
		},
	},
	{
		Name:    "Clutch System Warning Light",
		IconRef: "ClutchSystemWarningLight",
		Entries: []domain.Entry{
			{
				Name:            "Clutch System Warning Light",
				Description:     "This failure is usually represented by the 'Clutch Warning Light'. It indicates a problem with the clutch system, such as low hydraulic fluid or worn clutch plates.",
				Remedy:          "Check hydraulic fluid levels and inspect clutch components; may require clutch replacement.",
				IsComplexRepair: true,
				ContinueDriving: "No, do not continue driving. Clutch failure can cause loss of control.",
				AverageCost:     cost(1400),
			},
		},
	},
	{
		Name:    "Electric Parking Brake Failure",
		IconRef: "ElectricParkingBrakeFailure",
		Entries: []domain.Entry{
			{
				Name:            "Electric Parking Brake Failure",
				Description:     "This failure is usually represented by the 'Parking Brake Warning Light'. It indicates a malfunction in the electronic parking brake system, which may prevent it from engaging or disengaging.",
				Remedy:          "Inspect wiring and sensors; may require recalibration or replacement of the brake actuator.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, safe to drive. Get serviced soon to prevent potential starting issues.",
				AverageCost:     cost(450),
			},
		},
	},
	{
		Name:    "Immobilizer System Warning",
		IconRef: "ImmobilizerSystemWarning",
		Entries: []domain.Entry{
			{
				Name:            "Immobilizer System Warning",
				Description:     "This failure is usually represented by the 'Immobilizer Warning Light'. It indicates a fault in the vehicle’s anti-theft system, which may prevent the engine from starting.",
				Remedy:          "Check the key fob battery and immobilizer system; may require reprogramming or sensor replacement.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, safe to drive. Get serviced soon to prevent potential starting issues.",
				AverageCost:     cost(350),
			},
		},
	},
	{
		Name:    "Lane Departure Warning System Failure",
		IconRef: "LaneDepartureWarningSystemFailure",
		Entries: []domain.Entry{
			{
				Name:            "Lane Departure Warning System Failure",
				Description:     "This failure is usually represented by the 'Lane Departure Warning Light'. It indicates an issue with the lane departure warning or lane-keeping assist system.",
				Remedy:          "Check sensors and cameras for obstructions; may require recalibration or replacement.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but exercise caution. Lane departure failure can cause accidents.",
				AverageCost:     cost(500),
			},
		},
	},
	{
		Name:    "Adaptive Cruise Control Failure",
		IconRef: "AdaptiveCruiseControlFailure",
		Entries: []domain.Entry{
			{
				Name:            "Adaptive Cruise Control Failure",
				Description:     "This failure is usually represented by the 'Cruise Control Warning Light'. It indicates a malfunction in the adaptive cruise control system, affecting speed and braking automation.",
				Remedy:          "Inspect radar and camera sensors; may require a reset or sensor replacement.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but exercise caution. Adaptive cruise control failure can cause accidents.",
				AverageCost:     cost(600),
			},
		},
	},
	{
		Name:    "Suspension System Warning",
		IconRef: "SuspensionSystemWarning",
		Entries: []domain.Entry{
			{
				Name:            "Suspension System Warning",
				Description:     "This failure is usually represented by the 'Suspension Warning Light'. It indicates an issue with the air suspension or adaptive dampers, leading to poor ride quality.",
				Remedy:          "Check for air leaks, sensor faults, or worn suspension components; may require shock or strut replacement.",
				IsComplexRepair: true,
				ContinueDriving: "Yes, but exercise caution. Suspension failure can cause accidents.",
				AverageCost:     cost(1200),
			},
		},
	},
	{
		Name:    "Hybrid System Warning",
		IconRef: "HybridSystemWarning",
		Entries: []domain.Entry{
			{
				Name:            "Hybrid System Warning",
				Description:     "This failure is usually represented by the 'Hybrid System Warning Light'. It indicates a fault in the hybrid powertrain, such as battery or inverter issues.",
				Remedy:          "Check the hybrid battery and power control module; may require battery replacement or system reset.",
				IsComplexRepair: true,
				ContinueDriving: "No, do not continue driving. Hybrid system failure can cause unpredictable behavior.",
				AverageCost:     cost(2000),
			},
		},
	},
}
