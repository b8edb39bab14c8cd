package mockserver

import (
	"fmt"
	"time"

	"github.com/zhubert/chatview/internal/chat"
)

var sampleLines = []string{
	"Connect with fellow travelers, share the ride and save money",
	"Is anyone leaving from the airport around 6?",
	"I land at 5:40, happy to share a cab",
	"Sounds good, let's meet at gate 4",
	"**Heads up**: there's traffic near the toll plaza",
	"Thanks! I'll leave a bit early then",
	"Anyone need a drop near Sector 28?",
	"Me! I'm at the coffee shop outside arrivals",
}

// Generate builds a synthetic history of n messages, oldest first.
func Generate(n int) *chat.Page {
	base := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	users := []chat.Sender{
		{UserID: "you", Image: "https://fastly.picsum.photos/id/551/160/160.jpg", Self: true, IsKYCVerified: true},
		{UserID: "rohit", Image: "https://fastly.picsum.photos/id/648/160/160.jpg", IsKYCVerified: true},
		{UserID: "meera", Image: "https://fastly.picsum.photos/id/1072/160/160.jpg"},
	}

	p := &chat.Page{
		Chats:  make([]chat.Message, 0, n),
		From:   "IGI Airport, T3",
		To:     "Sector 28",
		Name:   "Trip No. 66",
		Status: "success",
	}
	for i := 0; i < n; i++ {
		p.Chats = append(p.Chats, chat.Message{
			ID:      fmt.Sprintf("msg-%d", i%25),
			Message: sampleLines[i%len(sampleLines)],
			Time:    base.Add(time.Duration(i) * 3 * time.Minute).Format("2006-01-02 15:04:05"),
			Sender:  users[i%len(users)],
		})
	}
	return p
}
