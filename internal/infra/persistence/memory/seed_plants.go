package memory

import "herbwise/internal/domain/entity"

// SeedPlants builds the static plant catalog. Records are shared read-only
// after load.
func SeedPlants() []*entity.Plant {
	return []*entity.Plant{
		{
			ID:             "1",
			Name:           "Turmeric",
			ScientificName: "Curcuma longa",
			Image:          "https://images.unsplash.com/photo-1615485500704-8e990f9900f7?w=400&h=300&fit=crop",
			Description:    "A golden spice with powerful anti-inflammatory and antioxidant properties.",
			Benefits:       []string{"Anti-inflammatory", "Antioxidant", "Pain relief", "Digestive health", "Immune support"},
			Uses:           []string{"Joint pain", "Arthritis", "Digestive issues", "Wound healing", "Skin conditions"},
			Preparation:    []string{"Fresh root tea", "Powder in milk", "Turmeric paste", "Capsules"},
			Precautions:    []string{"May increase bleeding risk", "Avoid before surgery", "May worsen acid reflux"},
			Cost: entity.PlantCost{
				Fresh:      "$6-10/lb",
				Dried:      "$12-20/lb",
				Supplement: "$15-30/bottle",
			},
			Availability: entity.AvailabilityCommon,
			Difficulty:   entity.DifficultyEasy,
			Categories:   []string{"Anti-inflammatory", "Digestive", "Skin"},
			Seasons:      []string{"Year-round"},
			Regions:      []string{"Tropical", "Subtropical"},
		},
		{
			ID:             "2",
			Name:           "Ginger",
			ScientificName: "Zingiber officinale",
			Image:          "https://images.unsplash.com/photo-1565876465021-3c4463eede12?w=400&h=300&fit=crop",
			Description:    "A warming root excellent for digestive health and nausea relief.",
			Benefits:       []string{"Digestive aid", "Anti-nausea", "Anti-inflammatory", "Circulation", "Immune support"},
			Uses:           []string{"Motion sickness", "Morning sickness", "Digestive upset", "Cold and flu", "Pain relief"},
			Preparation:    []string{"Fresh ginger tea", "Ginger juice", "Candied ginger", "Powder in cooking"},
			Precautions:    []string{"May interact with blood thinners", "Avoid large amounts during pregnancy"},
			Cost: entity.PlantCost{
				Fresh:      "$4-8/lb",
				Dried:      "$10-18/lb",
				Supplement: "$12-25/bottle",
			},
			Availability: entity.AvailabilityCommon,
			Difficulty:   entity.DifficultyEasy,
			Categories:   []string{"Digestive", "Anti-inflammatory", "Respiratory"},
			Seasons:      []string{"Year-round"},
			Regions:      []string{"Tropical", "Subtropical"},
		},
		{
			ID:             "3",
			Name:           "Echinacea",
			ScientificName: "Echinacea purpurea",
			Image:          "https://images.unsplash.com/photo-1564419320461-6870880221ad?w=400&h=300&fit=crop",
			Description:    "Purple coneflower known for immune system support and cold prevention.",
			Benefits:       []string{"Immune support", "Antiviral", "Anti-inflammatory", "Wound healing"},
			Uses:           []string{"Cold prevention", "Flu symptoms", "Upper respiratory infections", "Skin wounds"},
			Preparation:    []string{"Dried herb tea", "Tincture", "Capsules", "Fresh flower poultice"},
			Precautions:    []string{"Avoid with autoimmune conditions", "Not for long-term continuous use"},
			Cost: entity.PlantCost{
				Fresh:      "$8-15/lb",
				Dried:      "$14-22/lb",
				Supplement: "$10-25/bottle",
			},
			Availability: entity.AvailabilityModerate,
			Difficulty:   entity.DifficultyModerate,
			Categories:   []string{"Immune", "Antiviral", "Respiratory"},
			Seasons:      []string{"Summer", "Fall"},
			Regions:      []string{"Temperate"},
		},
		{
			ID:             "4",
			Name:           "Chamomile",
			ScientificName: "Matricaria chamomilla",
			Image:          "https://images.unsplash.com/photo-1594631252845-29fc4cc8cde9?w=400&h=300&fit=crop",
			Description:    "Gentle daisy-like flower prized for calming and sleep-promoting effects.",
			Benefits:       []string{"Calming", "Sleep aid", "Anti-inflammatory", "Digestive support"},
			Uses:           []string{"Insomnia", "Anxiety", "Upset stomach", "Skin irritation"},
			Preparation:    []string{"Flower tea", "Tincture", "Compress", "Bath soak"},
			Precautions:    []string{"May cause reactions in people sensitive to ragweed"},
			Cost: entity.PlantCost{
				Fresh:      "$10-16/lb",
				Dried:      "$12-20/lb",
				Supplement: "$8-18/bottle",
			},
			Availability: entity.AvailabilityCommon,
			Difficulty:   entity.DifficultyEasy,
			Categories:   []string{"Calming", "Digestive", "Skin"},
			Seasons:      []string{"Spring", "Summer"},
			Regions:      []string{"Temperate"},
		},
		{
			ID:             "5",
			Name:           "Peppermint",
			ScientificName: "Mentha piperita",
			Image:          "https://images.unsplash.com/photo-1628556270448-4d4e4148e1b1?w=400&h=300&fit=crop",
			Description:    "Refreshing mint with cooling properties for digestion and headaches.",
			Benefits:       []string{"Digestive aid", "Headache relief", "Decongestant", "Antimicrobial"},
			Uses:           []string{"IBS symptoms", "Tension headaches", "Nasal congestion", "Bad breath"},
			Preparation:    []string{"Fresh leaf tea", "Essential oil", "Infused oil", "Steam inhalation"},
			Precautions:    []string{"May worsen acid reflux", "Essential oil must be diluted"},
			Cost: entity.PlantCost{
				Fresh:      "$5-9/lb",
				Dried:      "$8-14/lb",
				Supplement: "$10-20/bottle",
			},
			Availability: entity.AvailabilityCommon,
			Difficulty:   entity.DifficultyEasy,
			Categories:   []string{"Digestive", "Respiratory", "Calming"},
			Seasons:      []string{"Spring", "Summer", "Fall"},
			Regions:      []string{"Temperate"},
		},
		{
			ID:             "6",
			Name:           "Lavender",
			ScientificName: "Lavandula angustifolia",
			Image:          "https://images.unsplash.com/photo-1498998754966-9f72acb0f37c?w=400&h=300&fit=crop",
			Description:    "Fragrant purple herb renowned for relaxation and skin care.",
			Benefits:       []string{"Calming", "Sleep aid", "Antiseptic", "Skin healing"},
			Uses:           []string{"Anxiety", "Insomnia", "Minor burns", "Insect bites"},
			Preparation:    []string{"Flower tea", "Essential oil", "Sachets", "Infused oil"},
			Precautions:    []string{"Essential oil not for ingestion", "May cause drowsiness"},
			Cost: entity.PlantCost{
				Fresh:      "$12-18/lb",
				Dried:      "$16-25/lb",
				Supplement: "$12-22/bottle",
			},
			Availability: entity.AvailabilityModerate,
			Difficulty:   entity.DifficultyModerate,
			Categories:   []string{"Calming", "Skin"},
			Seasons:      []string{"Summer"},
			Regions:      []string{"Mediterranean", "Temperate"},
		},
		{
			ID:             "7",
			Name:           "Garlic",
			ScientificName: "Allium sativum",
			Image:          "https://images.unsplash.com/photo-1615477550927-6ec8445fcfe0?w=400&h=300&fit=crop",
			Description:    "Pungent bulb with broad cardiovascular and immune benefits.",
			Benefits:       []string{"Immune support", "Heart health", "Antimicrobial", "Blood pressure support"},
			Uses:           []string{"Cold and flu", "High cholesterol", "Hypertension", "Fungal infections"},
			Preparation:    []string{"Raw cloves", "Aged extract", "Infused oil", "Capsules"},
			Precautions:    []string{"May increase bleeding risk", "Can irritate the stomach raw"},
			Cost: entity.PlantCost{
				Fresh:      "$3-6/lb",
				Dried:      "$8-12/lb",
				Supplement: "$8-16/bottle",
			},
			Availability: entity.AvailabilityCommon,
			Difficulty:   entity.DifficultyEasy,
			Categories:   []string{"Immune", "Antiviral", "Cardiovascular"},
			Seasons:      []string{"Year-round"},
			Regions:      []string{"Temperate", "Subtropical"},
		},
		{
			ID:             "8",
			Name:           "Ashwagandha",
			ScientificName: "Withania somnifera",
			Image:          "https://images.unsplash.com/photo-1611073615830-9f76902c10fe?w=400&h=300&fit=crop",
			Description:    "Adaptogenic root used for chronic stress and energy balance.",
			Benefits:       []string{"Stress relief", "Energy balance", "Sleep quality", "Cognitive support"},
			Uses:           []string{"Chronic stress", "Fatigue", "Poor sleep", "Low concentration"},
			Preparation:    []string{"Root powder in milk", "Capsules", "Tincture"},
			Precautions:    []string{"Avoid during pregnancy", "May interact with thyroid medication"},
			Cost: entity.PlantCost{
				Fresh:      "$14-20/lb",
				Dried:      "$18-28/lb",
				Supplement: "$15-30/bottle",
			},
			Availability: entity.AvailabilityRare,
			Difficulty:   entity.DifficultyDifficult,
			Categories:   []string{"Calming", "Adaptogen"},
			Seasons:      []string{"Fall"},
			Regions:      []string{"Subtropical", "Arid"},
		},
	}
}
