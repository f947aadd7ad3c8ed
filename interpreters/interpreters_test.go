/* Copyright 2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package interpreters

import (
	"testing"

	"github.com/Comcast/mode/interpreters/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandard(t *testing.T) {
	is := Standard()
	for _, name := range []string{"goja", "ecmascript", "ecmascript-5.1", "noop"} {
		_, err := is.Find(name)
		assert.NoError(t, err, name)
	}

	i, err := is.Find("ecmascript")
	require.NoError(t, err)
	assert.IsType(t, &goja.Interpreter{}, i)

	_, err = is.Find("cobol")
	assert.Error(t, err)
}
