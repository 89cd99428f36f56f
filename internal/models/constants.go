package models

// EventSummary is a display-only projection used for the featured list.
// These records are compiled in and never persisted.
type EventSummary struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	Slug     string `json:"slug"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

var FeaturedEvents = []EventSummary{
	{
		Title:    "Cloud Native Summit",
		Image:    "https://res.cloudinary.com/eventdeck/image/upload/events/cloud-native-summit.webp",
		Slug:     "cloud-native-summit",
		Location: "Accra, Ghana",
		Date:     "2026-03-14",
		Time:     "09:00",
	},
	{
		Title:    "Frontend Forward Conf",
		Image:    "https://res.cloudinary.com/eventdeck/image/upload/events/frontend-forward-conf.webp",
		Slug:     "frontend-forward-conf",
		Location: "Berlin, Germany",
		Date:     "2026-04-02",
		Time:     "10:30",
	},
	{
		Title:    "Data Engineering Meetup",
		Image:    "https://res.cloudinary.com/eventdeck/image/upload/events/data-engineering-meetup.webp",
		Slug:     "data-engineering-meetup",
		Location: "Online",
		Date:     "2026-04-21",
		Time:     "18:00",
	},
	{
		Title:    "Open Source Weekend",
		Image:    "https://res.cloudinary.com/eventdeck/image/upload/events/open-source-weekend.webp",
		Slug:     "open-source-weekend",
		Location: "Lagos, Nigeria",
		Date:     "2026-05-09",
		Time:     "08:30",
	},
}
