package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/mtw/paperstore/internal/domain"
)

// cities содержит города доставки. Поля DeliveryCharges и EstimatedDays
// показываются покупателю; сама стоимость доставки считается только от
// суммы корзины (см. pricing.DeliveryCharges).
var cities = []domain.City{
	{
		Name: "Lahore", DeliveryCharges: 150, EstimatedDays: "1-2 days",
		Areas: []string{
			"Askari X", "DHA Phase 1", "DHA Phase 2", "DHA Phase 3", "DHA Phase 4", "DHA Phase 5",
			"DHA Phase 6", "DHA Phase 7", "DHA Phase 8", "Gulberg I", "Gulberg II", "Gulberg III",
			"Model Town", "Johar Town", "Wapda Town", "Garden Town", "Faisal Town", "Iqbal Town",
			"Allama Iqbal Town", "Township", "Cavalry Ground", "Cantt", "Mall Road", "Liberty Market",
			"MM Alam Road", "Jail Road", "Canal Road", "Thokar Niaz Baig", "Raiwind Road",
			"Ferozpur Road", "Multan Road", "GT Road", "Shalimar Link Road", "Ring Road",
		},
	},
	{
		Name: "Karachi", DeliveryCharges: 200, EstimatedDays: "2-3 days",
		Areas: []string{
			"DHA Phase 1", "DHA Phase 2", "DHA Phase 3", "DHA Phase 4", "DHA Phase 5", "DHA Phase 6",
			"DHA Phase 7", "DHA Phase 8", "Clifton", "Gulshan-e-Iqbal", "North Nazimabad",
			"Nazimabad", "Federal B Area", "Gulistan-e-Johar", "Malir", "Korangi", "Landhi",
			"Saddar", "II Chundrigar Road", "Tariq Road", "Shahrah-e-Faisal", "University Road",
			"Bahadurabad", "Pechs", "Soldier Bazaar", "Garden", "Lyari", "Orangi Town",
		},
	},
	{
		Name: "Islamabad", DeliveryCharges: 180, EstimatedDays: "1-2 days",
		Areas: []string{
			"F-6", "F-7", "F-8", "F-10", "F-11", "G-6", "G-7", "G-8", "G-9", "G-10", "G-11",
			"I-8", "I-9", "I-10", "E-7", "E-11", "Blue Area", "Red Zone", "Diplomatic Enclave",
			"Margalla Hills", "Sector H-8", "Sector H-9", "Sector H-13", "PWD", "CDA",
		},
	},
	{
		Name: "Rawalpindi", DeliveryCharges: 180, EstimatedDays: "1-2 days",
		Areas: []string{
			"Saddar", "Commercial Market", "Committee Chowk", "Murree Road", "Mall Road",
			"Cantt", "Westridge", "Satellite Town", "Chaklala", "Bahria Town", "DHA Phase 1",
			"DHA Phase 2", "Gulraiz Housing Scheme", "PWD", "Askari Housing",
		},
	},
	{
		Name: "Faisalabad", DeliveryCharges: 200, EstimatedDays: "2-3 days",
		Areas: []string{
			"Civil Lines", "Gulberg", "People's Colony", "Madina Town", "Samanabad",
			"Millat Town", "Susan Road", "Jail Road", "Canal Road", "Sargodha Road",
		},
	},
	{
		Name: "Multan", DeliveryCharges: 220, EstimatedDays: "2-3 days",
		Areas: []string{
			"Cantt", "Gulgasht Colony", "New Multan", "Bosan Road", "MDA Chowk",
			"Shah Rukn-e-Alam Colony", "Officers Colony", "Model Town",
		},
	},
	{
		Name: "Peshawar", DeliveryCharges: 250, EstimatedDays: "3-4 days",
		Areas: []string{
			"University Town", "Hayatabad", "Saddar", "Cantt", "GT Road",
			"Ring Road", "Jamrud Road", "Kohat Road",
		},
	},
	{
		Name: "Quetta", DeliveryCharges: 300, EstimatedDays: "4-5 days",
		Areas: []string{
			"Cantt", "Satellite Town", "Jinnah Town", "Brewery Road",
			"Zarghoon Road", "Shahrah-e-Iqbal",
		},
	},
	{
		Name: "Sialkot", DeliveryCharges: 200, EstimatedDays: "2-3 days",
		Areas: []string{
			"Cantt", "Civil Lines", "Allama Iqbal Road", "Paris Road",
			"Kutchery Road", "Rangpura",
		},
	},
	{
		Name: "Gujranwala", DeliveryCharges: 180, EstimatedDays: "2-3 days",
		Areas: []string{
			"Civil Lines", "Satellite Town", "Model Town", "Peoples Colony",
			"Rehman Pura", "Wapda Town",
		},
	},
	{
		Name: "Toba Tek Singh", DeliveryCharges: 220, EstimatedDays: "2-3 days",
		Areas: []string{"City Center", "Civil Lines", "Satellite Town"},
	},
}

var promoCodes = []domain.PromoCode{
	{Code: "MTXUH", Discount: 2.5, MinPurchase: 1000, Active: true, Description: "2.5% off on orders above PKR 1000"},
	{Code: "BFHSXMT", Discount: 2.5, MinPurchase: 1000, Active: true, Description: "2.5% off on orders above PKR 1000"},
}

var countryCodes = []domain.CountryCode{
	{Code: "+92", Country: "Pakistan"},
	{Code: "+1", Country: "United States"},
	{Code: "+44", Country: "United Kingdom"},
	{Code: "+91", Country: "India"},
	{Code: "+86", Country: "China"},
	{Code: "+49", Country: "Germany"},
	{Code: "+33", Country: "France"},
	{Code: "+81", Country: "Japan"},
	{Code: "+82", Country: "South Korea"},
	{Code: "+61", Country: "Australia"},
	{Code: "+971", Country: "UAE"},
	{Code: "+966", Country: "Saudi Arabia"},
	{Code: "+90", Country: "Turkey"},
	{Code: "+7", Country: "Russia"},
	{Code: "+55", Country: "Brazil"},
	{Code: "+52", Country: "Mexico"},
	{Code: "+39", Country: "Italy"},
	{Code: "+34", Country: "Spain"},
	{Code: "+31", Country: "Netherlands"},
	{Code: "+46", Country: "Sweden"},
}

// Cities возвращает города доставки
func Cities() []domain.City {
	return cities
}

// City ищет город по имени
func City(name string) (*domain.City, bool) {
	for i := range cities {
		if cities[i].Name == name {
			return &cities[i], true
		}
	}
	return nil, false
}

// CountryCodes возвращает телефонные коды стран
func CountryCodes() []domain.CountryCode {
	return countryCodes
}

// EstimatedDelivery возвращает ожидаемую дату доставки для города.
// Берется верхняя граница диапазона EstimatedDays; для неизвестного
// города используется 3-5 дней по умолчанию.
func EstimatedDelivery(cityName string, now time.Time) string {
	days := "3-5 days"
	if city, ok := City(cityName); ok {
		days = city.EstimatedDays
	}

	upper := 3
	fields := strings.SplitN(strings.Fields(days)[0], "-", 2)
	if len(fields) == 2 {
		if n, err := strconv.Atoi(fields[1]); err == nil {
			upper = n
		}
	}

	return now.AddDate(0, 0, upper).Format("Monday, 2 January 2006")
}
