package genai

import (
	"fmt"
	"strings"

	"github.com/lic521/wanderai/internal/domain"
)

// defaultInterests is substituted when the user selected no interest tags.
const defaultInterests = "一般观光"

// buildPrompt renders the natural-language generation instruction from the
// trip input. The address and transport requirements are spelled out
// explicitly because models otherwise tend to return vague venue names with
// no way to get there; the first activity of the trip is assumed to depart
// from the traveler's hotel.
func buildPrompt(input domain.TripInput, language string) string {
	interests := strings.Join(input.Interests, ", ")
	if interests == "" {
		interests = defaultInterests
	}

	return fmt.Sprintf(`请为我去 %s 的旅行规划一个详细的行程。
时长：%d 天。
旅行者：%s。
预算等级：%s。
兴趣偏好：%s。

要求：
1. 必须包含具体的 **真实地址** (address)。
2. 必须包含详细的 **交通方案** (transport)：如何从上一个地点到达当前地点（例如：乘坐地铁X号线，公交Y路，或打车约Z元）。第一个活动假定从酒店出发。
3. 行程要合逻辑，路线要顺畅。
4. 请务必使用%s回复。

Ensure the response is valid JSON matching the provided schema.`,
		input.Destination, input.Duration, input.Travelers, input.Budget, interests, language)
}
