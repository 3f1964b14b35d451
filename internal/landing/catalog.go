package landing

import "fmt"

// service is the compact seed from which full Page records are derived.
// All prices are in whole Nepali rupees.
type service struct {
	slug     string
	name     string
	category string
	tagline  string
	tiers    []Tier
	features []string
}

var services = []service{
	{
		slug: "netflix", name: "Netflix", category: "streaming",
		tagline: "Watch movies and series in 4K on a shared or private screen",
		tiers: []Tier{
			{Name: "Shared Screen", Price: 399, Duration: "1 month"},
			{Name: "Private Screen", Price: 649, Duration: "1 month"},
			{Name: "Private Screen", Price: 1799, Duration: "3 months"},
		},
		features: []string{"4K Ultra HD", "Works on TV, mobile and laptop", "Instant delivery after payment"},
	},
	{
		slug: "prime-video", name: "Amazon Prime Video", category: "streaming",
		tagline: "Prime originals and blockbusters on every device",
		tiers: []Tier{
			{Name: "Shared Screen", Price: 199, Duration: "1 month"},
			{Name: "Private Account", Price: 449, Duration: "1 month"},
		},
		features: []string{"Full HD streaming", "Prime originals", "Instant delivery after payment"},
	},
	{
		slug: "disney-plus-hotstar", name: "Disney+ Hotstar", category: "streaming",
		tagline: "Live sports, Disney originals and Indian series",
		tiers: []Tier{
			{Name: "Super", Price: 349, Duration: "1 month"},
			{Name: "Premium", Price: 549, Duration: "1 month"},
		},
		features: []string{"Live cricket", "Disney and Marvel titles", "Instant delivery after payment"},
	},
	{
		slug: "youtube-premium", name: "YouTube Premium", category: "streaming",
		tagline: "Ad-free YouTube with background play and downloads",
		tiers: []Tier{
			{Name: "Individual", Price: 349, Duration: "1 month"},
			{Name: "Individual", Price: 949, Duration: "3 months"},
		},
		features: []string{"No ads", "Background play", "YouTube Music included"},
	},
	{
		slug: "spotify", name: "Spotify Premium", category: "music",
		tagline: "Ad-free music with offline downloads",
		tiers: []Tier{
			{Name: "Individual", Price: 449, Duration: "1 month"},
			{Name: "Individual", Price: 1199, Duration: "3 months"},
		},
		features: []string{"No ads", "Offline listening", "Highest audio quality"},
	},
	{
		slug: "crunchyroll", name: "Crunchyroll", category: "streaming",
		tagline: "The largest anime library, subbed and dubbed",
		tiers: []Tier{
			{Name: "Mega Fan", Price: 299, Duration: "1 month"},
		},
		features: []string{"Simulcasts from Japan", "No ads", "Offline viewing"},
	},
	{
		slug: "zee5", name: "ZEE5", category: "streaming",
		tagline: "Hindi movies, originals and live TV",
		tiers: []Tier{
			{Name: "Premium", Price: 249, Duration: "1 month"},
			{Name: "Premium", Price: 1499, Duration: "12 months"},
		},
		features: []string{"Full HD", "Live TV channels", "Works on all devices"},
	},
	{
		slug: "alt-balaji", name: "ALTBalaji", category: "streaming",
		tagline: "Original Hindi web series",
		tiers: []Tier{
			{Name: "Premium", Price: 149, Duration: "1 month"},
		},
		features: []string{"All originals unlocked", "Mobile and TV", "Instant delivery"},
	},
	{
		slug: "canva-pro", name: "Canva Pro", category: "productivity",
		tagline: "Premium templates, background remover and brand kits",
		tiers: []Tier{
			{Name: "Pro (invite)", Price: 599, Duration: "12 months"},
		},
		features: []string{"Premium templates", "Background remover", "100GB cloud storage"},
	},
	{
		slug: "grammarly", name: "Grammarly Premium", category: "productivity",
		tagline: "Advanced writing suggestions on every site",
		tiers: []Tier{
			{Name: "Premium", Price: 899, Duration: "1 month"},
		},
		features: []string{"Tone and clarity rewrites", "Plagiarism checker", "Browser extension support"},
	},
	{
		slug: "office-365", name: "Microsoft 365", category: "productivity",
		tagline: "Word, Excel, PowerPoint and 1TB OneDrive",
		tiers: []Tier{
			{Name: "Personal", Price: 1499, Duration: "12 months"},
		},
		features: []string{"Desktop Office apps", "1TB OneDrive", "Works on 5 devices"},
	},
	{
		slug: "zoom-pro", name: "Zoom Pro", category: "productivity",
		tagline: "Meetings without the 40-minute limit",
		tiers: []Tier{
			{Name: "Pro", Price: 1299, Duration: "1 month"},
		},
		features: []string{"Unlimited meeting length", "Cloud recording", "Up to 100 participants"},
	},
	{
		slug: "coursera-plus", name: "Coursera Plus", category: "education",
		tagline: "Unlimited certificates from top universities",
		tiers: []Tier{
			{Name: "Plus", Price: 2999, Duration: "12 months"},
		},
		features: []string{"7,000+ courses", "Unlimited certificates", "Guided projects included"},
	},
	{
		slug: "tinder-gold", name: "Tinder Gold", category: "dating",
		tagline: "See who likes you before you swipe",
		tiers: []Tier{
			{Name: "Gold", Price: 1499, Duration: "1 month"},
		},
		features: []string{"See who likes you", "Unlimited likes", "5 Super Likes a week"},
	},
	{
		slug: "bumble-boost", name: "Bumble Boost", category: "dating",
		tagline: "Extend matches and rematch expired connections",
		tiers: []Tier{
			{Name: "Boost", Price: 1299, Duration: "1 month"},
		},
		features: []string{"Unlimited swipes", "Rematch expired matches", "1 Spotlight a week"},
	},
	{
		slug: "nordvpn", name: "NordVPN", category: "security",
		tagline: "Fast VPN with 6,000+ servers worldwide",
		tiers: []Tier{
			{Name: "Standard", Price: 649, Duration: "1 month"},
			{Name: "Standard", Price: 4999, Duration: "12 months"},
		},
		features: []string{"6 devices at once", "No-logs policy", "Threat protection"},
	},
	{
		slug: "surfshark-vpn", name: "Surfshark VPN", category: "security",
		tagline: "Unlimited devices on one subscription",
		tiers: []Tier{
			{Name: "Starter", Price: 499, Duration: "1 month"},
		},
		features: []string{"Unlimited devices", "CleanWeb ad blocker", "100+ countries"},
	},
	{
		slug: "windows-11-pro", name: "Windows 11 Pro Key", category: "software",
		tagline: "Genuine lifetime activation key",
		tiers: []Tier{
			{Name: "Retail Key", Price: 1999, Duration: "lifetime"},
		},
		features: []string{"Genuine Microsoft key", "Lifetime activation", "Email delivery"},
	},
	{
		slug: "telegram-premium", name: "Telegram Premium", category: "social",
		tagline: "Bigger uploads, faster downloads, premium stickers",
		tiers: []Tier{
			{Name: "Premium", Price: 649, Duration: "1 month"},
		},
		features: []string{"4GB uploads", "Faster downloads", "No sponsored messages"},
	},
	{
		slug: "youtube-music", name: "YouTube Music Premium", category: "music",
		tagline: "Ad-free music from the world's biggest catalog",
		tiers: []Tier{
			{Name: "Individual", Price: 249, Duration: "1 month"},
		},
		features: []string{"No ads", "Background play", "Offline downloads"},
	},
}

var (
	pages   []Page
	bySlug  map[string]Page
	commonQ = []FAQ{
		{
			Question: "How do I receive my subscription?",
			Answer:   "After your payment is confirmed on WhatsApp, credentials are delivered to your email, usually within 30 minutes.",
		},
		{
			Question: "How do I pay?",
			Answer:   "Pay via eSewa, Khalti, IME Pay or bank transfer, then send the payment screenshot through the WhatsApp confirmation link.",
		},
		{
			Question: "What if my subscription stops working?",
			Answer:   "Contact support with your order ID and we replace it within the warranty period.",
		},
	}
)

func init() {
	pages = make([]Page, 0, len(services))
	bySlug = make(map[string]Page, len(services))

	for _, s := range services {
		p := Page{
			Slug:     s.slug,
			Name:     s.name,
			Tagline:  s.tagline,
			Tiers:    s.tiers,
			Features: s.features,
			FAQs:     commonQ,
			Meta: SEO{
				Title:       fmt.Sprintf("Buy %s in Nepal | DigiPasal", s.name),
				Description: fmt.Sprintf("%s. Pay with eSewa, Khalti or bank transfer and get instant delivery in Nepal.", s.tagline),
				Keywords:    fmt.Sprintf("%s nepal, buy %s nepal, %s price nepal, %s subscription", s.slug, s.slug, s.slug, s.category),
			},
		}
		pages = append(pages, p)
		bySlug[p.Slug] = p
	}
}

// All returns every landing page record.
func All() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// BySlug returns the landing page for a service slug.
func BySlug(slug string) (Page, bool) {
	p, ok := bySlug[slug]
	return p, ok
}
