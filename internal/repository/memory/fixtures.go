package memory

import "github.com/muhammadnaveedsaleem774/noorfab/internal/domain"

func salePrice(v int64) *int64 { return &v }

// seedProducts is the demo catalog. It stands in for a real product service
// until one exists; prices are integer minor units.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Classic Cotton Tee",
			Slug:        "classic-cotton-tee",
			CategoryID:  "cat-tops",
			Description: "Premium cotton t-shirt. Soft, breathable fabric perfect for everyday wear. Machine wash cold, tumble dry low.",
			Price:       2999,
			Material:    "Cotton",
			Rating:      4.5,
			SKU:         "ALT-CT-001",
			Status:      domain.ProductStatusActive,
			Images: []domain.ProductImage{
				{URL: "/images/classic-cotton-tee.jpg", AltText: "Classic Cotton Tee", Order: 0},
			},
			Variants: []domain.ProductVariant{
				{Size: "S", Color: "White", Stock: 10, VariantSKU: "ALT-CT-001-S-W"},
				{Size: "M", Color: "White", Stock: 15, VariantSKU: "ALT-CT-001-M-W"},
				{Size: "L", Color: "Black", Stock: 12, VariantSKU: "ALT-CT-001-L-B"},
				{Size: "M", Color: "Sage", Stock: 8, VariantSKU: "ALT-CT-001-M-S"},
			},
		},
		{
			ID:          "2",
			Name:        "Sage Linen Shirt",
			Slug:        "sage-linen-shirt",
			CategoryID:  "cat-shirts",
			Description: "Light linen shirt in sage green. Natural fibre, ideal for warm weather. Dry clean or hand wash.",
			Price:       5999,
			Material:    "Linen",
			Rating:      5,
			SKU:         "ALT-SL-002",
			Status:      domain.ProductStatusActive,
			Images: []domain.ProductImage{
				{URL: "/images/sage-linen-shirt.jpg", AltText: "Sage Linen Shirt", Order: 0},
			},
			Variants: []domain.ProductVariant{
				{Size: "S", Color: "Sage", Stock: 5, VariantSKU: "ALT-SL-002-S-S"},
				{Size: "M", Color: "Sage", Stock: 7, VariantSKU: "ALT-SL-002-M-S"},
				{Size: "L", Color: "Sage", Stock: 4, VariantSKU: "ALT-SL-002-L-S"},
			},
		},
		{
			ID:          "3",
			Name:        "Lawn Kurti",
			Slug:        "lawn-kurti",
			CategoryID:  "lawn",
			Description: "Elegant lawn kurti with delicate print. Light and comfortable for summer.",
			Price:       4499,
			SalePrice:   salePrice(3999),
			Material:    "Cotton",
			Rating:      4,
			SKU:         "ALT-LK-003",
			Status:      domain.ProductStatusActive,
			Images: []domain.ProductImage{
				{URL: "/images/lawn-kurti.jpg", AltText: "Lawn Kurti", Order: 0},
			},
			Variants: []domain.ProductVariant{
				{Size: "S", Color: "Pink", Stock: 6, VariantSKU: "ALT-LK-003-S-P"},
				{Size: "M", Color: "Pink", Stock: 9, VariantSKU: "ALT-LK-003-M-P"},
				{Size: "L", Color: "Beige", Stock: 0, VariantSKU: "ALT-LK-003-L-B"},
			},
		},
		{
			ID:          "4",
			Name:        "Cotton Palazzo",
			Slug:        "cotton-palazzo",
			CategoryID:  "cotton",
			Description: "Flowy cotton palazzo pants. High waist, full length.",
			Price:       3499,
			Material:    "Cotton",
			Rating:      4.5,
			SKU:         "ALT-CP-004",
			Status:      domain.ProductStatusActive,
			Images: []domain.ProductImage{
				{URL: "/images/cotton-palazzo.jpg", AltText: "Cotton Palazzo", Order: 0},
			},
			Variants: []domain.ProductVariant{
				{Size: "M", Color: "White", Stock: 11, VariantSKU: "ALT-CP-004-M-W"},
				{Size: "L", Color: "Navy", Stock: 8, VariantSKU: "ALT-CP-004-L-N"},
			},
		},
		{
			ID:          "5",
			Name:        "Linen Blend Dress",
			Slug:        "linen-blend-dress",
			CategoryID:  "linen",
			Description: "Relaxed linen blend midi dress. Perfect for casual and semi-formal occasions.",
			Price:       6999,
			Material:    "Linen",
			Rating:      5,
			SKU:         "ALT-LBD-005",
			Status:      domain.ProductStatusActive,
			Images: []domain.ProductImage{
				{URL: "/images/linen-blend-dress.jpg", AltText: "Linen Blend Dress", Order: 0},
			},
			Variants: []domain.ProductVariant{
				{Size: "S", Color: "Cream", Stock: 4, VariantSKU: "ALT-LBD-005-S-C"},
				{Size: "M", Color: "Sage", Stock: 7, VariantSKU: "ALT-LBD-005-M-S"},
				{Size: "L", Color: "Brown", Stock: 3, VariantSKU: "ALT-LBD-005-L-B"},
			},
		},
		{
			ID:          "6",
			Name:        "Festive Embroidered Top",
			Slug:        "festive-embroidered-top",
			CategoryID:  "festive",
			Description: "Hand-embroidered festive top. Pair with palazzo or skirt for celebrations.",
			Price:       7999,
			SalePrice:   salePrice(6499),
			Material:    "Silk",
			Rating:      4.5,
			SKU:         "ALT-FET-006",
			Status:      domain.ProductStatusActive,
			Images: []domain.ProductImage{
				{URL: "/images/festive-embroidered-top.jpg", AltText: "Festive Embroidered Top", Order: 0},
			},
			Variants: []domain.ProductVariant{
				{Size: "S", Color: "Burgundy", Stock: 5, VariantSKU: "ALT-FET-006-S-B"},
				{Size: "M", Color: "Burgundy", Stock: 6, VariantSKU: "ALT-FET-006-M-B"},
				{Size: "L", Color: "Gold", Stock: 2, VariantSKU: "ALT-FET-006-L-G"},
			},
		},
	}
}

// seedCollections returns the curated collections and their member product IDs.
func seedCollections() ([]domain.Collection, map[string][]string) {
	collections := []domain.Collection{
		{ID: "col-lawn", Name: "Lawn", Slug: "lawn", Description: "Light, breathable lawn for summer.", Image: "/images/collection-lawn.jpg", DisplayOrder: 1},
		{ID: "col-cotton", Name: "Cotton", Slug: "cotton", Description: "Pure cotton essentials.", Image: "/images/collection-cotton.jpg", DisplayOrder: 2},
		{ID: "col-linen", Name: "Linen", Slug: "linen", Description: "Natural linen for everyday elegance.", Image: "/images/collection-linen.jpg", DisplayOrder: 3},
		{ID: "col-festive", Name: "Festive", Slug: "festive", Description: "Celebration-ready silhouettes.", Image: "/images/collection-festive.jpg", DisplayOrder: 4},
		{ID: "col-rtw", Name: "Ready-to-Wear", Slug: "ready-to-wear", Description: "Effortless everyday wear.", Image: "/images/collection-rtw.jpg", DisplayOrder: 5},
		{ID: "col-new", Name: "New Arrivals", Slug: "new-arrivals", Description: "Fresh styles for the season.", Image: "/images/collection-new.jpg", DisplayOrder: 6},
	}

	members := map[string][]string{
		"lawn":          {"1", "2", "3"},
		"cotton":        {"1", "3", "4"},
		"linen":         {"2", "4", "5"},
		"festive":       {"5", "6"},
		"ready-to-wear": {"1", "2", "3", "4", "5", "6"},
		"new-arrivals":  {"3", "5", "6"},
	}

	return collections, members
}

// seedOrders returns demo orders for the seeded user.
func seedOrders() []domain.Order {
	address := domain.Address{
		ID:         "addr-1",
		FullName:   "Jane Doe",
		Phone:      "+1234567890",
		Street:     "123 Main St",
		City:       "Lahore",
		State:      "Punjab",
		PostalCode: "54000",
		Country:    "Pakistan",
		IsDefault:  true,
	}

	return []domain.Order{
		{
			ID:          "ord-1",
			OrderNumber: "ALN-ABC123",
			UserID:      "user-1",
			Items: []domain.OrderItem{
				{ProductID: "1", VariantSKU: "ALT-CT-001-M-W", Quantity: 2, UnitPrice: 2999},
				{ProductID: "2", VariantSKU: "ALT-SL-002-M-S", Quantity: 1, UnitPrice: 5999},
			},
			ShippingAddress: address,
			PaymentMethod:   domain.PaymentMethodCashOnDelivery,
			PaymentStatus:   domain.PaymentStatusPaid,
			OrderStatus:     domain.OrderStatusDelivered,
			Subtotal:        11997,
			ShippingFee:     500,
			TotalAmount:     12497,
			TrackingNumber:  "TRK123456789",
			CreatedAt:       mustParseTime("2025-01-15T10:00:00Z"),
		},
		{
			ID:          "ord-2",
			OrderNumber: "ALN-DEF456",
			UserID:      "user-1",
			Items: []domain.OrderItem{
				{ProductID: "3", VariantSKU: "ALT-LK-003-M-P", Quantity: 1, UnitPrice: 3999},
			},
			ShippingAddress: func() domain.Address {
				a := address
				a.ID = "addr-2"
				a.Street = "456 Oak Ave"
				return a
			}(),
			PaymentMethod:  domain.PaymentMethodCashOnDelivery,
			PaymentStatus:  domain.PaymentStatusPending,
			OrderStatus:    domain.OrderStatusShipped,
			Subtotal:       3999,
			ShippingFee:    500,
			TotalAmount:    4499,
			TrackingNumber: "TRK987654321",
			CreatedAt:      mustParseTime("2025-01-25T14:30:00Z"),
		},
		{
			ID:          "ord-3",
			OrderNumber: "ALN-GHI789",
			UserID:      "user-1",
			Items: []domain.OrderItem{
				{ProductID: "1", VariantSKU: "ALT-CT-001-S-W", Quantity: 1, UnitPrice: 2999},
				{ProductID: "4", VariantSKU: "ALT-CP-004-M-W", Quantity: 1, UnitPrice: 3499},
			},
			ShippingAddress: address,
			PaymentMethod:   domain.PaymentMethodCashOnDelivery,
			PaymentStatus:   domain.PaymentStatusPending,
			OrderStatus:     domain.OrderStatusProcessing,
			Subtotal:        6498,
			ShippingFee:     500,
			TotalAmount:     6998,
			CreatedAt:       mustParseTime("2025-01-28T09:00:00Z"),
		},
	}
}
