package metadata

// Supported registration roles. Any other role falls back to RoleUser.
const (
	RoleUser           = "user"
	RoleVendor         = "vendor"
	RoleWeddingPlanner = "wedding_planner"
)

// passwordMatchRule rejects payloads where password and confirmPassword are
// both present and differ. The error attaches to confirmPassword.
var passwordMatchRule = CrossFieldRule{
	Field:      "confirmPassword",
	Expression: "payload.password != nil && payload.confirmPassword != nil && payload.password != payload.confirmPassword",
	Message:    "Passwords do not match",
}

// baseSections returns the sections shared by every registration form.
// Role-specific sections are appended after these.
func baseSections() []Section {
	return []Section{
		{
			ID:    "personal",
			Title: "Personal Information",
			Fields: []Field{
				{
					ID: "name", Kind: KindText, Label: "Full Name",
					Placeholder: "Your full name", Required: true,
					Rule: &Rule{Operator: OpMinLength, Value: 2, Message: "Name must be at least 2 characters"},
				},
				{
					ID: "gender", Kind: KindSelect, Label: "Gender",
					Options: []Option{
						{Value: "male", Label: "Male"},
						{Value: "female", Label: "Female"},
						{Value: "non_binary", Label: "Non-binary"},
						{Value: "prefer_not_to_say", Label: "Prefer not to say"},
					},
					Rule: &Rule{Operator: OpIn, Value: []any{"male", "female", "non_binary", "prefer_not_to_say"}, Message: "Select a valid gender"},
				},
				{ID: "dateOfBirth", Kind: KindDate, Label: "Date of Birth"},
				{
					ID: "phone", Kind: KindText, Label: "Phone Number",
					Placeholder: "+1 555 000 0000",
					Rule:        &Rule{Operator: OpPattern, Value: `^\+?[0-9()\-\s]{7,20}$`, Message: "Please enter a valid phone number"},
				},
				{ID: "city", Kind: KindText, Label: "City", Placeholder: "Where are you based?"},
			},
		},
		{
			ID:    "account",
			Title: "Account Details",
			Fields: []Field{
				{
					ID: "email", Kind: KindEmail, Label: "Email Address",
					Placeholder: "you@example.com", Required: true,
					Rule: &Rule{Operator: OpEmail, Message: "Please enter a valid email address"},
				},
				{
					ID: "password", Kind: KindPassword, Label: "Password", Required: true,
					HelpText: "At least 8 characters",
					Rule:     &Rule{Operator: OpMinLength, Value: 8, Message: "Password must be at least 8 characters"},
				},
				{ID: "confirmPassword", Kind: KindPassword, Label: "Confirm Password", Required: true},
			},
		},
		{
			ID:          "preferences",
			Title:       "Preferences",
			Description: "You can change these later from your profile.",
			Fields: []Field{
				{ID: "newsletter", Kind: KindCheckbox, Label: "Send me wedding planning tips", Default: false},
				{ID: "avatar", Kind: KindFile, Label: "Profile Photo"},
			},
		},
	}
}

func userCatalog() *Catalog {
	return &Catalog{
		Role:        RoleUser,
		Title:       "Create Your Account",
		Description: "Sign up to start planning your wedding.",
		Sections:    baseSections(),
		Rules:       []CrossFieldRule{passwordMatchRule},
	}
}

func vendorCatalog() *Catalog {
	sections := append(baseSections(),
		Section{
			ID:          "business",
			Title:       "Business Information",
			Description: "Tell couples about your business.",
			Fields: []Field{
				{
					ID: "businessName", Kind: KindText, Label: "Business Name", Required: true,
					Rule: &Rule{Operator: OpMinLength, Value: 2, Message: "Business name must be at least 2 characters"},
				},
				{
					ID: "businessType", Kind: KindSelect, Label: "Business Type", Required: true,
					Options: []Option{
						{Value: "photography", Label: "Photography"},
						{Value: "videography", Label: "Videography"},
						{Value: "catering", Label: "Catering"},
						{Value: "florist", Label: "Florist"},
						{Value: "music", Label: "Music & Entertainment"},
						{Value: "decor", Label: "Decor & Styling"},
						{Value: "transport", Label: "Transport"},
						{Value: "other", Label: "Other"},
					},
					Rule: &Rule{Operator: OpIn, Value: []any{"photography", "videography", "catering", "florist", "music", "decor", "transport", "other"}, Message: "Select a valid business type"},
				},
				{
					ID: "description", Kind: KindTextarea, Label: "Business Description", Required: true,
					HelpText: "Describe your services in at least 50 characters.",
					Rule:     &Rule{Operator: OpMinLength, Value: 50, Message: "Description must be at least 50 characters"},
				},
				{
					ID: "experience", Kind: KindNumber, Label: "Years of Experience", Required: true,
					Rule: &Rule{Operator: OpMin, Value: 0, Message: "Experience cannot be negative"},
				},
				{
					ID: "website", Kind: KindText, Label: "Website",
					Placeholder: "https://",
					Rule:        &Rule{Operator: OpURL, Message: "Please enter a valid URL"},
				},
				{ID: "businessLicense", Kind: KindFile, Label: "Business License"},
			},
		},
		Section{
			ID:    "pricing",
			Title: "Services & Pricing",
			Fields: []Field{
				{
					ID: "servicesOffered", Kind: KindMultiSelect, Label: "Services Offered", Required: true,
					Options: []Option{
						{Value: "full_day", Label: "Full-day coverage"},
						{Value: "half_day", Label: "Half-day coverage"},
						{Value: "consultation", Label: "Consultation"},
						{Value: "rentals", Label: "Equipment rentals"},
						{Value: "custom", Label: "Custom packages"},
					},
					Rule: &Rule{Operator: OpNonEmpty, Message: "Select at least one service"},
				},
				{
					ID: "pricingModel", Kind: KindRadio, Label: "Pricing Model", Required: true,
					Options: []Option{
						{Value: "hourly", Label: "Hourly rate"},
						{Value: "package", Label: "Fixed packages"},
						{Value: "custom", Label: "Custom quotes"},
					},
					Rule: &Rule{Operator: OpIn, Value: []any{"hourly", "package", "custom"}, Message: "Select a valid pricing model"},
				},
				{
					ID: "hourlyRate", Kind: KindNumber, Label: "Hourly Rate", Required: true,
					Conditional: &Condition{Field: "pricingModel", Operator: "equals", Value: "hourly"},
					Rule:        &Rule{Operator: OpMin, Value: 0, Message: "Hourly rate cannot be negative"},
				},
				{
					ID: "packagePrice", Kind: KindNumber, Label: "Starting Package Price", Required: true,
					Conditional: &Condition{Field: "pricingModel", Operator: "equals", Value: "package"},
					Rule:        &Rule{Operator: OpMin, Value: 0, Message: "Package price cannot be negative"},
				},
			},
		},
	)

	return &Catalog{
		Role:        RoleVendor,
		Title:       "Vendor Registration",
		Description: "List your business on the marketplace.",
		Sections:    sections,
		Rules:       []CrossFieldRule{passwordMatchRule},
	}
}

func plannerCatalog() *Catalog {
	sections := append(baseSections(),
		Section{
			ID:    "professional",
			Title: "Professional Background",
			Fields: []Field{
				{
					ID: "companyName", Kind: KindText, Label: "Company Name", Required: true,
					Rule: &Rule{Operator: OpMinLength, Value: 2, Message: "Company name must be at least 2 characters"},
				},
				{
					ID: "experience", Kind: KindNumber, Label: "Years of Experience", Required: true,
					Rule: &Rule{Operator: OpMin, Value: 0, Message: "Experience cannot be negative"},
				},
				{
					ID: "description", Kind: KindTextarea, Label: "About Your Practice", Required: true,
					HelpText: "Describe your planning style in at least 50 characters.",
					Rule:     &Rule{Operator: OpMinLength, Value: 50, Message: "Description must be at least 50 characters"},
				},
				{
					ID: "portfolioUrl", Kind: KindText, Label: "Portfolio URL",
					Placeholder: "https://",
					Rule:        &Rule{Operator: OpURL, Message: "Please enter a valid URL"},
				},
			},
		},
		Section{
			ID:    "specialties",
			Title: "Specialties & Team",
			Fields: []Field{
				{
					ID: "specialties", Kind: KindMultiSelect, Label: "Specialties", Required: true,
					Options: []Option{
						{Value: "destination", Label: "Destination weddings"},
						{Value: "traditional", Label: "Traditional ceremonies"},
						{Value: "budget", Label: "Budget planning"},
						{Value: "luxury", Label: "Luxury events"},
						{Value: "themed", Label: "Themed weddings"},
						{Value: "cultural", Label: "Cultural ceremonies"},
					},
					Rule: &Rule{Operator: OpNonEmpty, Message: "Select at least one specialty"},
				},
				{
					ID: "teamSize", Kind: KindNumber, Label: "Team Size",
					Rule: &Rule{Operator: OpMin, Value: 1, Message: "Team size must be at least 1"},
				},
				{ID: "certified", Kind: KindCheckbox, Label: "I hold a planning certification", Default: false},
				{
					ID: "certificationBody", Kind: KindText, Label: "Certifying Organization", Required: true,
					Conditional: &Condition{Field: "certified", Operator: "equals", Value: true},
				},
			},
		},
	)

	return &Catalog{
		Role:        RoleWeddingPlanner,
		Title:       "Wedding Planner Registration",
		Description: "Offer your planning services to couples.",
		Sections:    sections,
		Rules:       []CrossFieldRule{passwordMatchRule},
	}
}

// BuiltinCatalogs returns fresh copies of the built-in role catalogs.
func BuiltinCatalogs() []*Catalog {
	return []*Catalog{userCatalog(), vendorCatalog(), plannerCatalog()}
}
